package rpc

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/nearindexer/arne/internal/core"
	"github.com/nearindexer/arne/near"
)

// Client talks JSON-RPC 2.0 to a single node. It covers the few methods the
// indexer needs, the block one first of all. Any failure to get a proper
// answer wraps core.ErrNotAvailable, the caller decides how fatal that is.
type Client struct {
	url    string
	client *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:    url,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

type request struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      string      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type responseError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *responseError  `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params, result interface{}) error {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      "dontcare",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: %s", method, err.Error())
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: read body: %s", method, err.Error())
	}
	if res.StatusCode != http.StatusOK {
		return errors.Wrapf(core.ErrNotAvailable, "%s: status %d", method, res.StatusCode)
	}

	var r response
	if err := json.Unmarshal(raw, &r); err != nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: unmarshal response: %s", method, err.Error())
	}
	if r.Error != nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: rpc error %d: %s", method, r.Error.Code, r.Error.Message)
	}
	if r.Result == nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: empty result", method)
	}

	if err := json.Unmarshal(r.Result, result); err != nil {
		return errors.Wrapf(core.ErrNotAvailable, "%s: unmarshal result: %s", method, err.Error())
	}

	return nil
}

// GetFinalizedBlock asks the node for the newest block with final finality.
func (c *Client) GetFinalizedBlock(ctx context.Context) (*near.BlockView, error) {
	ret := new(near.BlockView)

	err := c.call(ctx, "block", map[string]string{"finality": "final"}, ret)
	if err != nil {
		return nil, err
	}
	if ret.Header.Height == 0 {
		return nil, errors.Wrap(core.ErrNotAvailable, "block response with empty header")
	}

	return ret, nil
}

func (c *Client) GetFinalizedHeight(ctx context.Context) (uint64, error) {
	b, err := c.GetFinalizedBlock(ctx)
	if err != nil {
		return 0, err
	}
	return b.Header.Height, nil
}
