package lotofacil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"bolao/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

// ErrResultUnavailable means the lottery API has no published result for the
// requested contest yet. Callers treat it as "try again later", not a failure.
var ErrResultUnavailable = errors.New("contest result not available")

// Draw is an official Lotofácil draw: the 15 numbers and the prize value per
// tier, keyed by hit count (11..15).
type Draw struct {
	Concurso   int
	Dezenas    []int32
	Premiacoes map[int]float64
}

type response struct {
	Concurso   int      `json:"concurso"`
	Dezenas    []string `json:"dezenas"`
	Premiacoes []struct {
		Faixa       int     `json:"faixa"`
		ValorPremio float64 `json:"valorPremio"`
	} `json:"premiacoes"`
}

type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(url string, client clients.HTTPClientI) *Client {
	return &Client{
		url:    url,
		client: client,
	}
}

// FetchDraw pulls the result of one Lotofácil contest. Tier prizes come
// indexed by "faixa" where faixa 1 is 15 hits and faixa 5 is 11 hits.
func (c *Client) FetchDraw(ctx context.Context, concurso int) (*Draw, error) {
	url := c.url + "/api/lotofacil/" + strconv.Itoa(concurso)

	var statusCode int
	var respBody []byte
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		statusCode, respBody, _, err = c.client.Get(url, nil)
		if err != nil {
			if attempt < maxRetries {
				time.Sleep(retryInterval * time.Duration(attempt))
				continue
			}
			zap.L().Error("lottery api unreachable", zap.Int("concurso", concurso), zap.Error(err))
			return nil, fmt.Errorf("failed to fetch contest %d after %d retries: %w", concurso, maxRetries, err)
		}
		break
	}

	switch statusCode {
	case http.StatusOK:
		return parseDraw(concurso, respBody)
	case http.StatusNotFound:
		return nil, ErrResultUnavailable
	default:
		zap.L().Error("unexpected lottery api status", zap.Int("status", statusCode), zap.Int("concurso", concurso))
		return nil, fmt.Errorf("unexpected status code %d for contest %d", statusCode, concurso)
	}
}

func parseDraw(concurso int, body []byte) (*Draw, error) {
	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse lottery api response: %w", err)
	}
	if resp.Concurso != concurso {
		return nil, fmt.Errorf("contest number mismatch: expected %d, got %d", concurso, resp.Concurso)
	}
	if len(resp.Dezenas) != 15 {
		return nil, fmt.Errorf("expected 15 drawn numbers, got %d", len(resp.Dezenas))
	}

	draw := &Draw{
		Concurso:   concurso,
		Dezenas:    make([]int32, 0, len(resp.Dezenas)),
		Premiacoes: make(map[int]float64),
	}
	for _, d := range resp.Dezenas {
		n, err := strconv.Atoi(d)
		if err != nil {
			return nil, fmt.Errorf("invalid drawn number %q: %w", d, err)
		}
		draw.Dezenas = append(draw.Dezenas, int32(n))
	}
	for _, p := range resp.Premiacoes {
		hits := 16 - p.Faixa
		if hits >= 11 && hits <= 15 {
			draw.Premiacoes[hits] = p.ValorPremio
		}
	}
	return draw, nil
}
