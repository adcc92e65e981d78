package stats

import (
	"sort"
	"strings"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
)

// Roster agrupa nomes únicos de jogadores por "Home"/"Away" (ou tricode bruto sem classificação)
type Roster map[string][]string

// Rosters percorre as ações e agrupa jogadores por lado.
// Registros com tricode ou nome em branco são ignorados.
// Com classificação resolvida, um tricode fora dela invalida o resultado (ErrClassification).
func Rosters(actions []*dto.Action) (Roster, error) {
	classification := Classify(actions)
	sets := map[string]map[string]struct{}{}

	for _, a := range actions {
		tricode, _ := a.Tricode()
		player, _ := a.Player()
		if isBlank(tricode) || isBlank(player) {
			continue
		}

		key := tricode
		if len(classification) > 0 {
			side, err := classification.Lookup(tricode)
			if err != nil {
				return Roster{}, err
			}
			key = side.String()
		}

		if _, ok := sets[key]; !ok {
			sets[key] = map[string]struct{}{}
		}
		sets[key][player] = struct{}{}
	}

	out := make(Roster, len(sets))
	for key, names := range sets {
		list := make([]string, 0, len(names))
		for n := range names {
			list = append(list, n)
		}
		sort.Strings(list)
		out[key] = list
	}
	return out, nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
