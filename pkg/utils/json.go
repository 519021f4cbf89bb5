package utils

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var prettyJSON = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

// PrettyJson formata qualquer valor (ou um JSON já serializado em []byte) com indentação por tab.
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = prettyJSON.Marshal(in)
		if err != nil {
			return ""
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
