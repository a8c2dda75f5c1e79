package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/langowen/exchangeit/internal/currency/parser"
	"github.com/langowen/exchangeit/internal/entities"
	"github.com/pkg/errors"
)

const (
	DefaultProbeCurrency = "EUR"
	DefaultProbeAmount   = 2
)

// Transport performs one blocking GET and returns the body as text.
type Transport interface {
	FetchText(ctx context.Context, url string) (string, error)
}

type Settings struct {
	URL           string
	APIKey        string
	ProbeCurrency string
	ProbeAmount   float64
}

// Client converts amounts through the currency service. It keeps no state
// between calls and is safe for concurrent use.
type Client struct {
	transport Transport
	endpoint  *url.URL
	settings  Settings
}

func NewClient(transport Transport, settings Settings) (*Client, error) {
	const op = "exchange.NewClient"

	if transport == nil {
		return nil, errors.New(op + ": nil transport")
	}

	if settings.APIKey == "" {
		return nil, errors.Wrap(entities.ErrMissingAPIKey, op)
	}

	endpoint, err := url.Parse(settings.URL)
	if err != nil {
		return nil, errors.Wrap(err, op)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, errors.Errorf("%s: endpoint %q is not absolute", op, settings.URL)
	}

	if settings.ProbeCurrency == "" {
		settings.ProbeCurrency = DefaultProbeCurrency
	}
	if settings.ProbeAmount == 0 {
		settings.ProbeAmount = DefaultProbeAmount
	}

	if err := ValidateCode(settings.ProbeCurrency); err != nil {
		return nil, errors.Wrapf(err, "%s: probe currency", op)
	}
	if err := validateAmount(settings.ProbeAmount); err != nil {
		return nil, errors.Wrapf(err, "%s: probe amount", op)
	}

	return &Client{
		transport: transport,
		endpoint:  endpoint,
		settings:  settings,
	}, nil
}

// ValidateCode checks the shape of a currency code: non-empty, letters only.
func ValidateCode(code string) error {
	const op = "exchange.ValidateCode"

	if code == "" {
		return errors.Wrap(entities.ErrInvalidCodeFormat, op)
	}

	for _, r := range code {
		if !unicode.IsLetter(r) {
			return errors.Wrapf(entities.ErrInvalidCodeFormat, "%s: %q", op, code)
		}
	}

	return nil
}

func validateAmount(amt float64) error {
	if math.IsNaN(amt) || math.IsInf(amt, 0) {
		return entities.ErrInvalidAmount
	}

	return nil
}

// FormatAmount renders amt in its shortest decimal form: 2, 2.5, -2.5.
func FormatAmount(amt float64) string {
	return strconv.FormatFloat(amt, 'f', -1, 64)
}

// ServiceResponse sends a conversion of amt src into dst and returns the raw reply.
func (c *Client) ServiceResponse(ctx context.Context, src, dst string, amt float64) (string, error) {
	const op = "exchange.ServiceResponse"

	if err := ValidateCode(src); err != nil {
		return "", errors.Wrap(err, op)
	}
	if err := ValidateCode(dst); err != nil {
		return "", errors.Wrap(err, op)
	}
	if err := validateAmount(amt); err != nil {
		return "", errors.Wrap(err, op)
	}

	body, err := c.transport.FetchText(ctx, c.requestURL(src, dst, amt))
	if err != nil {
		return "", errors.Wrap(err, op)
	}

	return body, nil
}

// requestURL keeps the src, dst, amt, key order of the query.
func (c *Client) requestURL(src, dst string, amt float64) string {
	u := *c.endpoint

	var q strings.Builder
	if u.RawQuery != "" {
		q.WriteString(u.RawQuery)
		q.WriteByte('&')
	}
	fmt.Fprintf(&q, "src=%s&dst=%s&amt=%s&key=%s",
		url.QueryEscape(src),
		url.QueryEscape(dst),
		url.QueryEscape(FormatAmount(amt)),
		url.QueryEscape(c.settings.APIKey),
	)
	u.RawQuery = q.String()

	return u.String()
}

// IsCurrency probes the service with a small conversion into the probe currency.
// Every call costs one round trip.
func (c *Client) IsCurrency(ctx context.Context, code string) (bool, error) {
	const op = "exchange.IsCurrency"

	if err := ValidateCode(code); err != nil {
		return false, errors.Wrap(err, op)
	}

	body, err := c.ServiceResponse(ctx, code, c.settings.ProbeCurrency, c.settings.ProbeAmount)
	if err != nil {
		return false, errors.Wrap(err, op)
	}

	valid := !parser.HasError(body)
	slog.Debug("currency probed", "op", op, "code", code, "valid", valid)

	return valid, nil
}

// Exchange returns the amount of dst received for amt of src. Both codes are
// probed first; an unknown code is a precondition failure.
func (c *Client) Exchange(ctx context.Context, src, dst string, amt float64) (float64, error) {
	const op = "exchange.Exchange"

	if err := validateAmount(amt); err != nil {
		return 0, errors.Wrap(err, op)
	}

	for _, code := range []string{src, dst} {
		valid, err := c.IsCurrency(ctx, code)
		if err != nil {
			return 0, errors.Wrap(err, op)
		}
		if !valid {
			return 0, errors.Wrapf(entities.ErrInvalidCurrency, "%s: %s", op, code)
		}
	}

	body, err := c.ServiceResponse(ctx, src, dst, amt)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	resp, err := parser.Parse(body)
	if err != nil {
		if parser.HasError(body) {
			return 0, errors.Wrapf(entities.ErrServiceRejected, "%s: %s", op, strings.TrimSpace(body))
		}
		return 0, errors.Wrap(err, op)
	}

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = strings.TrimSpace(body)
		}
		return 0, errors.Wrapf(entities.ErrServiceRejected, "%s: %s", op, msg)
	}

	amount, err := parser.BeforeSpace(resp.Dst)
	if err != nil {
		return 0, errors.Wrap(err, op)
	}

	result, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, errors.Wrapf(entities.ErrMalformedAmount, "%s: %q", op, amount)
	}

	return result, nil
}
