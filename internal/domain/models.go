package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pool statuses as persisted in the boloes table.
const (
	PoolStatusOpen      = "aberto"
	PoolStatusClosed    = "fechado"
	PoolStatusApurated  = "apurado"
	PoolStatusCancelled = "cancelado"
)

// Transaction types and origins as persisted in the transacoes table.
const (
	TransactionCredit = "credito"
	TransactionDebit  = "debito"

	OriginPix           = "pix"
	OriginQuotaPurchase = "compra_cota"
	OriginPoolPrize     = "premio_bolao"

	TransactionConfirmed = "confirmado"
)

const (
	PaymentPending = "pendente"
	PaymentPaid    = "pago"
)

// User carries the account credentials plus the profile fields the user can
// edit. ChavePix is where the user wants payouts sent.
type User struct {
	ID           uuid.UUID `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Nome         string    `db:"nome"`
	Telefone     *string   `db:"telefone"`
	ChavePix     *string   `db:"chave_pix"`
	CreatedAt    time.Time `db:"created_at"`
}

// Pool is a bolão: a shared lottery entry sold in fractional quotas.
// ConcursoFim set and greater than ConcursoNumero makes it a teimosinha
// series spanning ConcursoFim-ConcursoNumero+1 consecutive contests.
type Pool struct {
	ID                uuid.UUID  `db:"id"`
	Nome              string     `db:"nome"`
	Descricao         string     `db:"descricao"`
	ConcursoNumero    int        `db:"concurso_numero"`
	ConcursoFim       *int       `db:"concurso_fim"`
	ConcursosApurados int        `db:"concursos_apurados"`
	TotalCotas        int        `db:"total_cotas"`
	CotasDisponiveis  int        `db:"cotas_disponiveis"`
	ValorCota         float64    `db:"valor_cota"`
	Status            string     `db:"status"`
	ResultadoDezenas  []int32    `db:"resultado_dezenas"`
	DataFechamento    *time.Time `db:"data_fechamento"`
	CreatedAt         time.Time  `db:"created_at"`
}

// Ticket is one registered 15-number combination of a pool. Acertos is the
// legacy single-contest hit count; series pools use ContestHit rows instead.
type Ticket struct {
	ID        uuid.UUID `db:"id"`
	PoolID    uuid.UUID `db:"bolao_id"`
	Dezenas   []int32   `db:"dezenas"`
	Acertos   *int      `db:"acertos"`
	CreatedAt time.Time `db:"created_at"`
}

// Quota records how much a buyer actually paid, not a share quantity. The
// effective share count is derived from ValorPago at distribution time.
type Quota struct {
	ID        uuid.UUID `db:"id"`
	PoolID    uuid.UUID `db:"bolao_id"`
	UserID    uuid.UUID `db:"usuario_id"`
	ValorPago float64   `db:"valor_pago"`
	CreatedAt time.Time `db:"created_at"`
}

// ContestResult is the write-once drawn-numbers row per (pool, contest).
type ContestResult struct {
	ID             uuid.UUID `db:"id"`
	PoolID         uuid.UUID `db:"bolao_id"`
	ConcursoNumero int       `db:"concurso_numero"`
	Dezenas        []int32   `db:"dezenas"`
	CreatedAt      time.Time `db:"created_at"`
}

type ContestHit struct {
	ID             uuid.UUID `db:"id"`
	TicketID       uuid.UUID `db:"jogo_id"`
	PoolID         uuid.UUID `db:"bolao_id"`
	ConcursoNumero int       `db:"concurso_numero"`
	Acertos        int       `db:"acertos"`
}

type PrizeRecord struct {
	ID             uuid.UUID `db:"id"`
	PoolID         uuid.UUID `db:"bolao_id"`
	ConcursoNumero int       `db:"concurso_numero"`
	PremioTotal    float64   `db:"premio_total"`
	Distribuido    bool      `db:"distribuido"`
	CreatedAt      time.Time `db:"created_at"`
}

type Wallet struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"usuario_id"`
	SaldoDisponivel float64   `db:"saldo_disponivel"`
	SaldoBloqueado  float64   `db:"saldo_bloqueado"`
}

// Transaction is an append-only ledger entry. Rows are never updated or
// deleted; every wallet mutation pairs with exactly one of these.
type Transaction struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"usuario_id"`
	Tipo           string    `db:"tipo"`
	Valor          float64   `db:"valor"`
	Origem         string    `db:"origem"`
	ReferenciaID   string    `db:"referencia_id"`
	Descricao      string    `db:"descricao"`
	SaldoAnterior  float64   `db:"saldo_anterior"`
	SaldoPosterior float64   `db:"saldo_posterior"`
	Status         string    `db:"status"`
	CreatedAt      time.Time `db:"created_at"`
}

type Payment struct {
	ID              uuid.UUID  `db:"id"`
	UserID          uuid.UUID  `db:"usuario_id"`
	Valor           float64    `db:"valor"`
	Status          string     `db:"status"`
	Gateway         string     `db:"gateway"`
	ExternalID      string     `db:"external_id"`
	QRCode          string     `db:"qr_code"`
	QRCodeBase64    string     `db:"qr_code_base64"`
	ExpiraEm        time.Time  `db:"expira_em"`
	WebhookRecebido bool       `db:"webhook_recebido"`
	PagoEm          *time.Time `db:"pago_em"`
	CreatedAt       time.Time  `db:"created_at"`
}

// PurchaseResult is the JSON verdict of the comprar_cota stored procedure.
type PurchaseResult struct {
	Sucesso       bool      `json:"sucesso"`
	Mensagem      string    `json:"mensagem"`
	CotaID        uuid.UUID `json:"cota_id"`
	ValorPago     float64   `json:"valor_pago"`
	SaldoRestante float64   `json:"saldo_restante"`
}
