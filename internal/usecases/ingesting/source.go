package ingesting

import (
	"context"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Nomes dos arquivos esperados no diretório de carga
const (
	AccountsFile   = "accounts.json"
	RepsFile       = "reps.json"
	DealsFile      = "deals.json"
	ActivitiesFile = "activities.json"
	TargetsFile    = "targets.json"
)

// FileSource lê os cinco arquivos JSON de um diretório
type FileSource struct {
	dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

func (s *FileSource) Load(ctx context.Context) (*RawDataset, error) {
	raw := &RawDataset{}

	files := []struct {
		name string
		dest any
	}{
		{AccountsFile, &raw.Accounts},
		{RepsFile, &raw.Reps},
		{DealsFile, &raw.Deals},
		{ActivitiesFile, &raw.Activities},
		{TargetsFile, &raw.Targets},
	}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := s.readJSON(file.name, file.dest); err != nil {
			return nil, err
		}
	}

	return raw, nil
}

func (s *FileSource) readJSON(filename string, dest any) error {
	path := filepath.Join(s.dir, filename)

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "falha ao abrir %s", path)
	}

	if err := json.Unmarshal(content, dest); err != nil {
		return errors.Wrapf(err, "falha ao decodificar %s", path)
	}

	return nil
}
