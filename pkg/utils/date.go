package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Formatos aceitos para datas vindas do CRM. O primeiro é o formato canônico (somente data).
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	time.DateTime,
}

// ParseDate converte uma data (YYYY-MM-DD, ISO-8601 ou YYYY-MM-DD HH:MM:SS) em time.Time.
// Retorna nil para valores vazios ou inválidos; nunca gera erro.
func ParseDate(dateStr string) *time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		date, err := time.Parse(layout, dateStr)
		if err == nil {
			return &date
		}
	}

	return nil
}

// ParseDatePtr é o equivalente de ParseDate para campos anuláveis
func ParseDatePtr(dateStr *string) *time.Time {
	if dateStr == nil {
		return nil
	}
	return ParseDate(*dateStr)
}

// DaysBetween retorna o piso de (end - start) em dias inteiros. Pode ser negativo.
func DaysBetween(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Hours() / 24))
}

// StartOfDay retorna a meia-noite do dia de t, no mesmo fuso
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthKey retorna o mês de t no formato YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// MonthLabel retorna o nome curto do mês (ex: "Jan") usado nos gráficos
func MonthLabel(t time.Time) string {
	return t.Format("Jan")
}

// LastMonths retorna o primeiro dia de cada um dos últimos count meses,
// do mais antigo para o mais recente, incluindo o mês de now.
func LastMonths(now time.Time, count int) []time.Time {
	if count <= 0 {
		return []time.Time{}
	}

	firstDay := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]time.Time, 0, count)
	for i := count - 1; i >= 0; i-- {
		months = append(months, firstDay.AddDate(0, -i, 0))
	}

	return months
}

// Quarter representa um trimestre civil (ex: 2026-Q1)
type Quarter struct {
	Year   int
	Number int
}

// QuarterOf retorna o trimestre que contém t: meses 1-3 → Q1, 4-6 → Q2, 7-9 → Q3, 10-12 → Q4
func QuarterOf(t time.Time) Quarter {
	return Quarter{
		Year:   t.Year(),
		Number: (int(t.Month())-1)/3 + 1,
	}
}

// ParseQuarter converte um rótulo "YYYY-Qn"
func ParseQuarter(label string) (Quarter, bool) {
	yearStr, numberStr, found := strings.Cut(strings.TrimSpace(label), "-")
	if !found || !strings.HasPrefix(numberStr, "Q") {
		return Quarter{}, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Quarter{}, false
	}

	number, err := strconv.Atoi(strings.TrimPrefix(numberStr, "Q"))
	if err != nil || number < 1 || number > 4 {
		return Quarter{}, false
	}

	return Quarter{Year: year, Number: number}, true
}

// QuarterFromMonthKey converte um mês YYYY-MM no trimestre correspondente
func QuarterFromMonthKey(monthKey string) (Quarter, bool) {
	month, err := time.Parse("2006-01", strings.TrimSpace(monthKey))
	if err != nil {
		return Quarter{}, false
	}
	return QuarterOf(month), true
}

func (q Quarter) String() string {
	return fmt.Sprintf("%d-Q%d", q.Year, q.Number)
}

// Previous retorna o trimestre anterior. Q1 do ano Y vira Q4 do ano Y-1.
func (q Quarter) Previous() Quarter {
	if q.Number == 1 {
		return Quarter{Year: q.Year - 1, Number: 4}
	}
	return Quarter{Year: q.Year, Number: q.Number - 1}
}

// Before compara cronologicamente por (ano, número)
func (q Quarter) Before(other Quarter) bool {
	if q.Year != other.Year {
		return q.Year < other.Year
	}
	return q.Number < other.Number
}

// Contains verifica se o ano e o mês de t caem dentro dos três meses do trimestre
func (q Quarter) Contains(t time.Time) bool {
	if t.Year() != q.Year {
		return false
	}

	month := int(t.Month())
	startMonth := (q.Number-1)*3 + 1
	endMonth := q.Number * 3

	return month >= startMonth && month <= endMonth
}
