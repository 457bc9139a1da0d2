package dto

import "time"

type CreatePoolRequestDTO struct {
	Nome           string     `json:"nome" example:"Bolão da firma"`
	Descricao      string     `json:"descricao,omitempty"`
	ConcursoNumero int        `json:"concurso_numero" example:"3000"`
	ConcursoFim    *int       `json:"concurso_fim,omitempty" example:"3004"`
	TotalCotas     int        `json:"total_cotas" example:"20"`
	ValorCota      float64    `json:"valor_cota" example:"15.5"`
	DataFechamento *time.Time `json:"data_fechamento,omitempty"`
}

type PoolResponseDTO struct {
	ID                string     `json:"id"`
	Nome              string     `json:"nome"`
	Descricao         string     `json:"descricao,omitempty"`
	ConcursoNumero    int        `json:"concurso_numero"`
	ConcursoFim       *int       `json:"concurso_fim,omitempty"`
	TotalConcursos    int        `json:"total_concursos"`
	ConcursosApurados int        `json:"concursos_apurados"`
	TotalCotas        int        `json:"total_cotas"`
	CotasDisponiveis  int        `json:"cotas_disponiveis"`
	ValorCota         float64    `json:"valor_cota"`
	Status            string     `json:"status"`
	ResultadoDezenas  []int32    `json:"resultado_dezenas,omitempty"`
	DataFechamento    *time.Time `json:"data_fechamento,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type AddTicketsRequestDTO struct {
	Jogos [][]int32 `json:"jogos"`
}

type TicketResponseDTO struct {
	ID      string  `json:"id"`
	Dezenas []int32 `json:"dezenas"`
	Acertos *int    `json:"acertos,omitempty"`
}

type ApurateRequestDTO struct {
	ConcursoNumero int             `json:"concurso_numero" example:"3000"`
	Dezenas        []int32         `json:"dezenas"`
	Premiacoes     map[int]float64 `json:"premiacoes,omitempty"`
}

type AdminStatsResponseDTO struct {
	BoloesPorStatus    map[string]int `json:"boloes_por_status"`
	CotasVendidas      int            `json:"cotas_vendidas"`
	ValorArrecadado    float64        `json:"valor_arrecadado"`
	SaldoEmCarteiras   float64        `json:"saldo_em_carteiras"`
	PagamentosPendente int            `json:"pagamentos_pendentes"`
}
