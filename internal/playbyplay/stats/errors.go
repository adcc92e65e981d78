package stats

import "errors"

var (
	// ErrNoActions indica sequência de ações ausente ou vazia
	ErrNoActions = errors.New("there are no actions")
	// ErrClassification indica que não foi possível resolver Home/Away para um tricode
	ErrClassification = errors.New("team classification unavailable")
	// ErrPlayerNotFound indica que nenhum registro casa exatamente com o nome pedido
	ErrPlayerNotFound = errors.New("player has no actions in this game")
	// ErrGameNotConcluded indica ausência do registro game/end
	ErrGameNotConcluded = errors.New("game didn't end yet")
	// ErrComputation indica aritmética inválida (divisão por zero) no cálculo das razões
	ErrComputation = errors.New("invalid ratio computation")
)
