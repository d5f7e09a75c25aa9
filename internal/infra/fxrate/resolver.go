package fxrate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"viajes-backoffice/internal/pkg/config"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

const (
	sourcePrimary  = "banxico"
	sourceFallback = "dof"
)

// HTTPResolver resolves the MXN-per-USD rate from the central bank series
// API, falling back to the official gazette when the primary is down. Both
// sources publish business-day rates only, so weekend dates are substituted
// with the preceding Friday and the source label says so.
type HTTPResolver struct {
	cfg    config.FXConfig
	client *http.Client
}

func NewHTTPResolver(cfg config.FXConfig) commands.FXResolver {
	return &HTTPResolver{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *HTTPResolver) Resolve(ctx context.Context, date time.Time) (commands.FXQuote, error) {
	quoteDate, substituted := businessDate(date)

	rate, source, err := r.fromPrimary(ctx, quoteDate)
	if err != nil {
		slog.Warn("primary rate source failed, trying fallback", "error", err.Error())
		rate, source, err = r.fromFallback(ctx, quoteDate)
		if err != nil {
			return commands.FXQuote{}, errs.Wrap(err, "all rate sources failed")
		}
	}

	if substituted {
		source = fmt.Sprintf("%s (friday %s)", source, quoteDate.Format("2006-01-02"))
	}
	return commands.FXQuote{Rate: rate, Source: source}, nil
}

// businessDate maps Saturday and Sunday onto the preceding Friday. Weekday
// holidays are not substituted; a missing publication surfaces as a
// resolution failure instead.
func businessDate(date time.Time) (time.Time, bool) {
	switch date.Weekday() {
	case time.Saturday:
		return date.AddDate(0, 0, -1), true
	case time.Sunday:
		return date.AddDate(0, 0, -2), true
	default:
		return date, false
	}
}

type banxicoResponse struct {
	Bmx struct {
		Series []struct {
			Datos []struct {
				Fecha string `json:"fecha"`
				Dato  string `json:"dato"`
			} `json:"datos"`
		} `json:"series"`
	} `json:"bmx"`
}

func (r *HTTPResolver) fromPrimary(ctx context.Context, date time.Time) (decimal.Decimal, string, error) {
	day := date.Format("2006-01-02")
	url := fmt.Sprintf("%s/%s/%s", r.cfg.PrimaryURL, day, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "failed to build primary rate request")
	}
	req.Header.Set("Accept", "application/json")
	if r.cfg.PrimaryToken != "" {
		req.Header.Set("Bmx-Token", r.cfg.PrimaryToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "primary rate request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, "", errs.New(fmt.Sprintf("primary rate source returned status %d", resp.StatusCode))
	}

	var body banxicoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, "", errs.Wrap(err, "failed to decode primary rate response")
	}
	if len(body.Bmx.Series) == 0 || len(body.Bmx.Series[0].Datos) == 0 {
		return decimal.Zero, "", errs.New("primary rate source has no data for date")
	}

	raw := body.Bmx.Series[0].Datos[0].Dato
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "primary rate source returned a non-numeric rate")
	}
	if !rate.IsPositive() {
		return decimal.Zero, "", errs.New("primary rate source returned a non-positive rate")
	}
	return rate, sourcePrimary, nil
}

type dofResponse struct {
	ListaIndicadores []struct {
		Valor string `json:"valor"`
		Fecha string `json:"fecha"`
	} `json:"ListaIndicadores"`
}

func (r *HTTPResolver) fromFallback(ctx context.Context, date time.Time) (decimal.Decimal, string, error) {
	url := fmt.Sprintf("%s/%s", r.cfg.FallbackURL, date.Format("02-01-2006"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "failed to build fallback rate request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "fallback rate request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, "", errs.New(fmt.Sprintf("fallback rate source returned status %d", resp.StatusCode))
	}

	var body dofResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, "", errs.Wrap(err, "failed to decode fallback rate response")
	}
	if len(body.ListaIndicadores) == 0 {
		return decimal.Zero, "", errs.New("fallback rate source has no data for date")
	}

	rate, err := decimal.NewFromString(body.ListaIndicadores[0].Valor)
	if err != nil {
		return decimal.Zero, "", errs.Wrap(err, "fallback rate source returned a non-numeric rate")
	}
	if !rate.IsPositive() {
		return decimal.Zero, "", errs.New("fallback rate source returned a non-positive rate")
	}
	return rate, sourceFallback, nil
}
