package stats

import (
	"fmt"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
)

const (
	ShotMade = "Made"

	ActionGame = "game"
	SubTypeEnd = "end"
)

// TeamType é o lado do time no jogo
type TeamType int

const (
	Home TeamType = iota
	Away
)

func (t TeamType) String() string {
	switch t {
	case Home:
		return "Home"
	case Away:
		return "Away"
	default:
		return fmt.Sprintf("TeamType(%d)", int(t))
	}
}

// Classification mapeia tricode -> Home/Away. Tem zero ou duas entradas.
type Classification map[string]TeamType

// Lookup resolve o lado de um tricode
func (c Classification) Lookup(tricode string) (TeamType, error) {
	t, ok := c[tricode]
	if !ok {
		return 0, fmt.Errorf("tricode %q: %w", tricode, ErrClassification)
	}
	return t, nil
}

// Classify infere Home/Away a partir da primeira cesta convertida com o mandante à frente.
// O time dessa ação é Home; o primeiro tricode diferente que aparece depois é Away.
// Retorna mapa vazio quando a inferência não fecha os dois lados.
//
// A heurística supõe que o mandante lidera logo após a própria primeira cesta;
// erra se o visitante pontua primeiro.
func Classify(actions []*dto.Action) Classification {
	classified := false
	var firstTricode string

	for _, a := range actions {
		tricode, ok := a.Tricode()
		if !ok {
			continue
		}

		if !classified {
			if a.ShotResult == ShotMade && homeAhead(a) {
				firstTricode = tricode
				classified = true
			}
			continue
		}

		if tricode != firstTricode {
			return Classification{firstTricode: Home, tricode: Away}
		}
	}

	return Classification{}
}

// homeAhead só é verdadeiro com os dois placares presentes
func homeAhead(a *dto.Action) bool {
	home, okH := a.ScoreHome.Get()
	away, okA := a.ScoreAway.Get()
	return okH && okA && home > away
}
