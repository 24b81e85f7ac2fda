package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clms-qa/clms-contract-tests/harness"
)

const connectPollInterval = time.Millisecond * 100

// Credentials are the username/password pair sent to the login endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Client issues requests against one CLMS deployment. It is not safe for
// concurrent use; the harness runs every step sequentially.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     harness.Logger
}

// NewClient creates a Client for the given API base URL (for example
// "http://localhost:3001/api"). The timeout bounds every individual request,
// so a hung endpoint cannot stall the run indefinitely.
func NewClient(baseURL string, requestTimeout time.Duration, logger harness.Logger) *Client {
	if logger == nil {
		logger = harness.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// SetLogger redirects the client's request/response trace, normally into the
// captured debug output of whichever test is currently running.
func (c *Client) SetLogger(logger harness.Logger) {
	if logger == nil {
		logger = harness.NullLogger()
	}
	c.logger = logger
}

// Connect waits for CLMS to accept connections, then authenticates. Login
// rejection is reported immediately and is fatal: only transport errors are
// retried, until startupTimeout elapses. Progress dots go to output so a
// slow-starting service is visibly being waited on.
func Connect(
	baseURL string,
	creds Credentials,
	startupTimeout time.Duration,
	requestTimeout time.Duration,
	logger harness.Logger,
	output io.Writer,
) (*Client, error) {
	c := NewClient(baseURL, requestTimeout, logger)

	fmt.Fprintf(output, "Connecting to CLMS API at %s", baseURL)
	deadline := time.Now().Add(startupTimeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := c.Login(creds)
		if err == nil {
			fmt.Fprintln(output)
			if resp.Status != http.StatusOK {
				return nil, fmt.Errorf("authentication failed with status %d: %s",
					resp.Status, resp.BodyExcerpt())
			}
			fmt.Fprintf(output, "Authenticated as %q\n", creds.Username)
			return c, nil
		}
		if !errors.Is(err, errTransport) {
			return nil, err
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return nil, fmt.Errorf("timed out waiting for CLMS, result of last attempt was: %w", err)
		}
		time.Sleep(connectPollInterval)
	}
}

// errTransport marks errors where no HTTP response was received at all, the
// only class of error that Connect retries.
var errTransport = errors.New("transport error")

// Login posts credentials and, on HTTP 200, stores the bearer token from
// data.accessToken for all subsequent requests. A non-200 response is
// returned for the caller to judge; it is not an error at this level.
func (c *Client) Login(creds Credentials) (*Response, error) {
	resp, err := c.Post("/auth/login", creds)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusOK {
		token := resp.DataField("accessToken").StringValue()
		if token == "" {
			return resp, errors.New("login succeeded but response had no data.accessToken")
		}
		c.token = token
	}
	return resp, nil
}

// Token returns the bearer token from the last successful login.
func (c *Client) Token() string {
	return c.token
}

// Get issues a GET request. The path may include a query string.
func (c *Client) Get(path string) (*Response, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(path string, params interface{}) (*Response, error) {
	return c.do(http.MethodPost, path, params)
}

// Put issues a PUT request with an optional JSON body.
func (c *Client) Put(path string, params interface{}) (*Response, error) {
	return c.do(http.MethodPut, path, params)
}

// Delete issues a DELETE request.
func (c *Client) Delete(path string) (*Response, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, params interface{}) (*Response, error) {
	var body io.Reader
	var requestData []byte
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		requestData = data
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if requestData != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if requestData != nil {
		c.logger.Printf("%s %s %s", method, path, string(requestData))
	} else {
		c.logger.Printf("%s %s", method, path)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %s", errTransport, method, path, err)
	}
	respData, err := io.ReadAll(httpResp.Body)
	_ = httpResp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading response body for %s %s: %w", method, path, err)
	}

	resp := &Response{Status: httpResp.StatusCode, Body: respData}
	_ = json.Unmarshal(respData, &resp.Envelope)
	c.logger.Printf("%s %s returned %d: %s", method, path, resp.Status, resp.BodyExcerpt())
	return resp, nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}

func queryEscape(value string) string {
	return url.QueryEscape(value)
}
