package schedule

import "github.com/BruksfildServices01/barber-agenda/internal/httperr"

// Config é a política de abertura de um dia da semana já resolvida.
type Config struct {
	OpensAt     string // HH:MM
	ClosesAt    string // HH:MM
	SlotMinutes int
}

// Interval é um intervalo civil meio-aberto [Start, End).
type Interval struct {
	Start string // HH:MM
	End   string // HH:MM
}

// FreeSlots gera a grade de horários do dia e subtrai os intervalos
// ocupados (agendamentos ativos e bloqueios), retornando os inícios
// livres em ordem crescente, formato "HH:MM".
//
// Regra de ocupação: cada intervalo marca apenas os offsets obtidos
// andando de SlotMinutes em SlotMinutes a partir do PRÓPRIO início do
// intervalo, até antes do fim. Um intervalo desalinhado da grade não
// apaga o slot anterior que ele sobrepõe parcialmente — o front-end
// depende desse comportamento.
func FreeSlots(cfg Config, occupied []Interval) ([]string, error) {
	if cfg.SlotMinutes <= 0 {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	opens, err := MinuteOfDay(cfg.OpensAt)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	closes, err := MinuteOfDay(cfg.ClosesAt)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_configuration")
	}

	// agenda vazia, não é erro
	if opens >= closes {
		return []string{}, nil
	}

	busy := make(map[int]bool)
	for _, iv := range occupied {
		start, err := MinuteOfDay(iv.Start)
		if err != nil {
			continue
		}
		end, err := MinuteOfDay(iv.End)
		if err != nil || end <= start {
			continue
		}

		for m := start; m < end; m += cfg.SlotMinutes {
			busy[m] = true
		}
	}

	slots := make([]string, 0)
	for m := opens; m+cfg.SlotMinutes <= closes; m += cfg.SlotMinutes {
		if busy[m] {
			continue
		}
		slots = append(slots, FormatMinute(m))
	}

	return slots, nil
}
