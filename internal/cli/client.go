package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// --- Response types (дублируются из api/dto.go, CLI не импортирует internal/api) ---

// NodeSpec — узел графа в JSON-описании.
type NodeSpec struct {
	ID       string         `json:"id"`
	Label    string         `json:"label,omitempty"`
	Kind     string         `json:"kind"`
	Config   map[string]any `json:"config,omitempty"`
	Position map[string]any `json:"position,omitempty"`
}

// EdgeSpec — ребро графа в JSON-описании.
type EdgeSpec struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphResponse — граф из API.
type GraphResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Nodes       []NodeSpec `json:"nodes"`
	Edges       []EdgeSpec `json:"edges"`
	CreatedAt   string     `json:"created_at"`
	UpdatedAt   string     `json:"updated_at"`
}

// RunResponse — итог прогона графа из API.
type RunResponse struct {
	ID           string                    `json:"id"`
	GraphID      string                    `json:"graph_id"`
	Status       string                    `json:"status"`
	StartedAt    string                    `json:"started_at,omitempty"`
	FinishedAt   string                    `json:"finished_at,omitempty"`
	FailedNodeID string                    `json:"failed_node_id,omitempty"`
	Error        string                    `json:"error,omitempty"`
	Results      map[string]map[string]any `json:"results"`
}

// ValidateResponse — результат валидации графа.
type ValidateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// CheckEdgeResponse — результат проверки ребра.
type CheckEdgeResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// --- Request types ---

// SaveGraphRequest — создание/обновление графа.
type SaveGraphRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags,omitempty"`
	Nodes       []NodeSpec `json:"nodes"`
	Edges       []EdgeSpec `json:"edges"`
}

// CheckEdgeRequest — проверка ребра перед фиксацией.
type CheckEdgeRequest struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// --- API response wrappers ---

type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type listResponse struct {
	Data  json.RawMessage `json:"data"`
	Total int             `json:"total"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Client ---

// Client — HTTP-клиент для Docflow API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создаёт клиент для API.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// runFlow синхронный: узлы prompt_invocation могут работать долго
			Timeout: 5 * time.Minute,
		},
	}
}

// --- Graphs ---

// ListGraphs возвращает все графы.
func (c *Client) ListGraphs() ([]GraphResponse, error) {
	var graphs []GraphResponse
	err := c.list("/api/v1/graphs", &graphs)
	return graphs, err
}

// CreateGraph создаёт новый граф.
func (c *Client) CreateGraph(req SaveGraphRequest) (*GraphResponse, error) {
	var graph GraphResponse
	err := c.post("/api/v1/graphs", req, &graph)
	return &graph, err
}

// GetGraph возвращает граф по ID.
func (c *Client) GetGraph(id string) (*GraphResponse, error) {
	var graph GraphResponse
	err := c.get("/api/v1/graphs/"+id, &graph)
	return &graph, err
}

// UpdateGraph обновляет граф целиком.
func (c *Client) UpdateGraph(id string, req SaveGraphRequest) (*GraphResponse, error) {
	var graph GraphResponse
	err := c.put("/api/v1/graphs/"+id, req, &graph)
	return &graph, err
}

// DeleteGraph удаляет граф.
func (c *Client) DeleteGraph(id string) error {
	return c.delete("/api/v1/graphs/" + id)
}

// ValidateGraph валидирует граф без сохранения.
func (c *Client) ValidateGraph(req SaveGraphRequest) (*ValidateResponse, error) {
	body := map[string]any{"nodes": req.Nodes, "edges": req.Edges}
	var resp ValidateResponse
	err := c.post("/api/v1/graphs/validate", body, &resp)
	return &resp, err
}

// CheckEdge проверяет, можно ли добавить ребро в сохранённый граф.
func (c *Client) CheckEdge(graphID string, req CheckEdgeRequest) (*CheckEdgeResponse, error) {
	var resp CheckEdgeResponse
	err := c.post("/api/v1/graphs/"+graphID+"/edges/check", req, &resp)
	return &resp, err
}

// --- Runs ---

// RunGraph запускает граф и ждёт завершения прогона.
func (c *Client) RunGraph(graphID string) (*RunResponse, error) {
	var run RunResponse
	err := c.post("/api/v1/graphs/"+graphID+"/run", nil, &run)
	return &run, err
}

// --- HTTP helpers ---

func (c *Client) get(path string, result any) error {
	return c.doData(http.MethodGet, path, nil, result)
}

func (c *Client) post(path string, body any, result any) error {
	return c.doData(http.MethodPost, path, body, result)
}

func (c *Client) put(path string, body any, result any) error {
	return c.doData(http.MethodPut, path, body, result)
}

func (c *Client) delete(path string) error {
	resp, err := c.do(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return c.checkError(resp)
}

func (c *Client) list(path string, result any) error {
	resp, err := c.do(http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	var lr listResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return json.Unmarshal(lr.Data, result)
}

func (c *Client) doData(method, path string, body any, result any) error {
	resp, err := c.do(method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkError(resp); err != nil {
		return err
	}

	// 204 No Content
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var dr dataResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if result != nil {
		return json.Unmarshal(dr.Data, result)
	}
	return nil
}

func (c *Client) do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func (c *Client) checkError(resp *http.Response) error {
	if resp.StatusCode < 400 {
		return nil
	}

	var er errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&er); err != nil {
		return fmt.Errorf("API error: HTTP %d", resp.StatusCode)
	}

	return fmt.Errorf("%s: %s", er.Error.Code, er.Error.Message)
}
