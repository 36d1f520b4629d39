package dto

// Mesmo shape consumido pelo painel admin.
type AppointmentListDTO struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"cliente"`
	ClientPhone string `json:"telefone"`
	Service     string `json:"servico"`
	Date        string `json:"data"`
	StartTime   string `json:"inicio"`
	EndTime     string `json:"fim"`
	Status      string `json:"status"`
}
