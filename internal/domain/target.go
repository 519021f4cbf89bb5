package domain

import "github.com/vfg2006/revenue-intelligence-api/pkg/utils"

// Target é a meta de receita de um trimestre (um registro por trimestre)
type Target struct {
	ID      string  `json:"id"`
	Quarter string  `json:"quarter"` // Formato YYYY-Qn
	Value   float64 `json:"value"`
}

// ResolveTarget busca a meta do trimestre informado. Se não existir, usa a meta do
// trimestre mais recente cadastrado (ordem cronológica, não lexicográfica).
// Retorna nil quando não há nenhuma meta utilizável.
func ResolveTarget(targets []*Target, quarter utils.Quarter) *Target {
	var latest *Target
	var latestQuarter utils.Quarter

	for _, target := range targets {
		if target == nil {
			continue
		}

		targetQuarter, ok := utils.ParseQuarter(target.Quarter)
		if !ok {
			continue
		}

		if targetQuarter == quarter {
			return target
		}

		if latest == nil || latestQuarter.Before(targetQuarter) {
			latest = target
			latestQuarter = targetQuarter
		}
	}

	return latest
}
