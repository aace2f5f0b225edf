// Package carddav реализует клиент подмножества WebDAV/CardDAV,
// достаточного для синхронизации одной адресной книги.
package carddav

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/carddavsync/internal/models"
	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout таймаут одного HTTP запроса
	DefaultTimeout = 30 * time.Second
	// DefaultMaxIDAttempts лимит попыток подбора свободного идентификатора
	DefaultMaxIDAttempts = 1000

	// DefaultUserAgent заголовок User-Agent по умолчанию
	DefaultUserAgent = "carddavsync"

	maxResponseSize = 32 << 20
	maxRedirects    = 10

	mediaTypeXML   = `text/xml; charset="utf-8"`
	mediaTypeVCard = "text/vcard; charset=utf-8"
)

// ListMode способ получения списка ресурсов коллекции
type ListMode int

const (
	// ListModeAuto использует REPORT, если сервер объявил класс addressbook в OPTIONS
	ListModeAuto ListMode = iota
	// ListModePropfind всегда PROPFIND Depth: 1
	ListModePropfind
	// ListModeReport всегда REPORT addressbook-query
	ListModeReport
)

// ParseListMode разбирает значение из конфигурации
func ParseListMode(s string) (ListMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ListModeAuto, nil
	case "propfind":
		return ListModePropfind, nil
	case "report":
		return ListModeReport, nil
	default:
		return ListModeAuto, fmt.Errorf("unknown list mode %q", s)
	}
}

// HTTPClient минимальный интерфейс HTTP клиента
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client протокольный клиент одной коллекции
type Client struct {
	httpClient    HTTPClient
	limiter       *rate.Limiter
	logger        *slog.Logger
	baseURL       *url.URL
	intN          func(n int) int
	username      string
	password      string
	userAgent     string
	davClasses    []string
	maxIDAttempts int
	listMode      ListMode
	mu            sync.Mutex

	// reportRejected сервер отверг REPORT в режиме auto, дальше только PROPFIND
	reportRejected bool
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет HTTP клиент (по умолчанию NewHTTPClient(DefaultTimeout, false))
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCredentials задаёт логин и пароль для HTTP Basic
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithRateLimit ограничивает частоту исходящих запросов
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limiter = rate.NewLimiter(limit, max(burst, 1))
		}
	}
}

// WithLogger задаёт логгер
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithUserAgent задаёт заголовок User-Agent
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxIDAttempts задаёт лимит попыток подбора идентификатора
func WithMaxIDAttempts(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxIDAttempts = n
		}
	}
}

// WithListMode задаёт способ получения списка ресурсов
func WithListMode(mode ListMode) Option {
	return func(c *Client) { c.listMode = mode }
}

// WithRand задаёт источник случайных чисел для генерации идентификаторов
func WithRand(r *rand.Rand) Option {
	return func(c *Client) { c.intN = r.IntN }
}

// NewHTTPClient создаёт HTTP клиент с таймаутом на запрос.
// Проверка TLS сертификата отключается только явно.
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		MinVersion:         tls.VersionTLS12,
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // explicit opt-in
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			// Authorization сохраняем только в пределах того же хоста
			if len(via) > 0 && req.URL.Host == via[0].URL.Host {
				if auth := via[0].Header.Get("Authorization"); auth != "" {
					req.Header.Set("Authorization", auth)
				}
			}
			return nil
		},
	}
}

// NewClient создаёт клиент для коллекции по её базовому URL.
// Учётные данные из userinfo URL переносятся в HTTP Basic и из URL удаляются.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid collection url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid collection url %q: scheme must be http or https", u.Redacted())
	}

	c := &Client{
		baseURL:       u,
		logger:        slog.Default(),
		intN:          rand.IntN,
		userAgent:     DefaultUserAgent,
		maxIDAttempts: DefaultMaxIDAttempts,
	}
	if u.User != nil {
		c.username = u.User.Username()
		c.password, _ = u.User.Password()
		u.User = nil
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""

	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = NewHTTPClient(DefaultTimeout, false)
	}
	return c, nil
}

// BaseURL возвращает URL коллекции без учётных данных
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Probe отправляет OPTIONS и возвращает ошибку с видом сбоя.
// Запоминает классы DAV, объявленные сервером.
func (c *Client) Probe(ctx context.Context) error {
	res, err := c.do(ctx, "OPTIONS", c.baseURL, nil, nil)
	if err != nil {
		return err
	}
	if !isSuccess(res.status) {
		return &StatusError{Method: "OPTIONS", Path: c.baseURL.Path, StatusCode: res.status}
	}

	c.mu.Lock()
	c.davClasses = parseDAVHeader(res.header.Values("DAV"))
	c.mu.Unlock()
	return nil
}

// CheckConnection проверка доступности перед многошаговой синхронизацией
func (c *Client) CheckConnection(ctx context.Context) bool {
	if err := c.Probe(ctx); err != nil {
		c.logger.Warn("CardDAV server unreachable", "url", c.BaseURL(), "error", err)
		return false
	}
	return true
}

// List возвращает ресурсы коллекции с change-токенами.
// При includeBodies тела, не пришедшие в ответе, догружаются через Read.
func (c *Client) List(ctx context.Context, includeBodies bool) ([]models.RemoteElement, error) {
	var (
		res *httpResult
		err error
	)
	if c.useReport() {
		res, err = c.listing(ctx, "REPORT", includeBodies)
		if err != nil && c.listMode == ListModeAuto && reportUnsupported(err) {
			c.logger.Info("REPORT rejected, falling back to PROPFIND", "url", c.BaseURL(), "error", err)
			c.mu.Lock()
			c.reportRejected = true
			c.mu.Unlock()
			res, err = c.listing(ctx, "PROPFIND", includeBodies)
		}
	} else {
		res, err = c.listing(ctx, "PROPFIND", includeBodies)
	}
	if err != nil {
		return nil, err
	}

	elements, err := parseElements(res.body, c.baseURL.Path)
	if err != nil {
		return nil, err
	}

	if includeBodies {
		for i := range elements {
			if elements[i].VCard != "" {
				continue
			}
			doc, err := c.Read(ctx, elements[i].ID)
			if err != nil {
				return nil, err
			}
			elements[i].VCard = doc
		}
	}
	return elements, nil
}

func (c *Client) listing(ctx context.Context, method string, includeBodies bool) (*httpResult, error) {
	var (
		body []byte
		err  error
	)
	if method == "REPORT" {
		body, err = addressbookQueryBody(includeBodies)
	} else {
		body, err = propfindListBody()
	}
	if err != nil {
		return nil, err
	}

	res, err := c.do(ctx, method, c.baseURL, body, map[string]string{
		"Depth":        "1",
		"Content-Type": mediaTypeXML,
	})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK && res.status != http.StatusMultiStatus {
		return nil, &StatusError{Method: method, Path: c.baseURL.Path, StatusCode: res.status}
	}
	return res, nil
}

// reportUnsupported статусы, которыми серверы отвечают на неподдерживаемый REPORT.
// 401 и 404 к методу не относятся и возвращаются как есть.
func reportUnsupported(err error) bool {
	var se *StatusError
	if !errors.As(err, &se) {
		return false
	}
	switch se.StatusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusMethodNotAllowed,
		http.StatusUnsupportedMediaType, http.StatusUnprocessableEntity, http.StatusNotImplemented:
		return true
	}
	return false
}

// MultiGet получает метаданные и тела указанных ресурсов одним REPORT.
// Отсутствующие на сервере ресурсы в результат не попадают.
func (c *Client) MultiGet(ctx context.Context, ids []string) ([]models.RemoteElement, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	hrefs := make([]string, 0, len(ids))
	for _, id := range ids {
		hrefs = append(hrefs, c.resourceURL(id).EscapedPath())
	}
	body, err := addressbookMultigetBody(hrefs)
	if err != nil {
		return nil, err
	}

	res, err := c.do(ctx, "REPORT", c.baseURL, body, map[string]string{
		"Depth":        "0",
		"Content-Type": mediaTypeXML,
	})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK && res.status != http.StatusMultiStatus {
		return nil, &StatusError{Method: "REPORT", Path: c.baseURL.Path, StatusCode: res.status}
	}
	return parseElements(res.body, c.baseURL.Path)
}

// Read возвращает документ ресурса
func (c *Client) Read(ctx context.Context, id string) (string, error) {
	u := c.resourceURL(id)
	res, err := c.do(ctx, http.MethodGet, u, nil, map[string]string{"Accept": "text/vcard"})
	if err != nil {
		return "", err
	}
	if !isSuccess(res.status) {
		return "", &StatusError{Method: http.MethodGet, Path: u.Path, StatusCode: res.status}
	}
	return string(res.body), nil
}

// Create сохраняет новый документ под свободным идентификатором и возвращает его
func (c *Client) Create(ctx context.Context, document string) (string, error) {
	id, err := c.generateID(ctx)
	if err != nil {
		return "", err
	}

	u := c.resourceURL(id)
	res, err := c.do(ctx, http.MethodPut, u, []byte(sanitizeDocument(document)), map[string]string{
		"Content-Type":  mediaTypeVCard,
		"If-None-Match": "*",
	})
	if err != nil {
		return "", err
	}
	switch res.status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return id, nil
	default:
		return "", &StatusError{Method: http.MethodPut, Path: u.Path, StatusCode: res.status}
	}
}

// Update перезаписывает существующий ресурс
func (c *Client) Update(ctx context.Context, id, document string) error {
	u := c.resourceURL(id)
	res, err := c.do(ctx, http.MethodPut, u, []byte(sanitizeDocument(document)), map[string]string{
		"Content-Type": mediaTypeVCard,
	})
	if err != nil {
		return err
	}
	if !isSuccess(res.status) {
		return &StatusError{Method: http.MethodPut, Path: u.Path, StatusCode: res.status}
	}
	return nil
}

// Delete удаляет ресурс
func (c *Client) Delete(ctx context.Context, id string) error {
	u := c.resourceURL(id)
	res, err := c.do(ctx, http.MethodDelete, u, nil, nil)
	if err != nil {
		return err
	}
	if res.status != http.StatusOK && res.status != http.StatusNoContent {
		return &StatusError{Method: http.MethodDelete, Path: u.Path, StatusCode: res.status}
	}
	return nil
}

// DiscoverAddressBooks перечисляет адресные книги, вложенные в базовый URL
func (c *Client) DiscoverAddressBooks(ctx context.Context) ([]models.AddressBook, error) {
	body, err := propfindDiscoverBody()
	if err != nil {
		return nil, err
	}
	res, err := c.do(ctx, "PROPFIND", c.baseURL, body, map[string]string{
		"Depth":        "1",
		"Content-Type": mediaTypeXML,
	})
	if err != nil {
		return nil, err
	}
	if res.status != http.StatusOK && res.status != http.StatusMultiStatus {
		return nil, &StatusError{Method: "PROPFIND", Path: c.baseURL.Path, StatusCode: res.status}
	}
	return parseAddressBooks(res.body, c.baseURL)
}

// Close освобождает простаивающие соединения
func (c *Client) Close() error {
	if hc, ok := c.httpClient.(interface{ CloseIdleConnections() }); ok {
		hc.CloseIdleConnections()
	}
	return nil
}

func (c *Client) useReport() bool {
	switch c.listMode {
	case ListModeReport:
		return true
	case ListModePropfind:
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reportRejected {
		return false
	}
	for _, class := range c.davClasses {
		if class == "addressbook" {
			return true
		}
	}
	return false
}

func (c *Client) resourceURL(id string) *url.URL {
	return c.baseURL.JoinPath(id + vcardExt)
}

type httpResult struct {
	header http.Header
	body   []byte
	status int
}

// do выполняет запрос. Учётные данные передаются только заголовком
// Authorization и не попадают ни в логи, ни в тексты ошибок.
func (c *Client) do(ctx context.Context, method string, u *url.URL, body []byte, headers map[string]string) (*httpResult, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit wait: %w", ErrConnection, err)
		}
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrConnection, method, u.Path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s response: %w", ErrConnection, method, err)
	}

	c.logger.Debug("CardDAV request",
		"method", method,
		"path", u.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return &httpResult{status: resp.StatusCode, header: resp.Header, body: respBody}, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// parseDAVHeader: "1, 2, 3, addressbook" -> [1 2 3 addressbook]
func parseDAVHeader(values []string) []string {
	var classes []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				classes = append(classes, strings.ToLower(part))
			}
		}
	}
	return classes
}
