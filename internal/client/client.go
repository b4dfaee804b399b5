// Package client is a thin Go client for the portfolio API: one method
// per server operation, stateless apart from the bearer token captured
// at login. No caching, no retries.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hetpatel09/portfolio-api/internal/models"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// Login exchanges the admin passphrase for a bearer token used by all
// subsequent mutations.
func (c *Client) Login(password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(http.MethodPost, "/api/admin/login", map[string]string{"password": password}, &out); err != nil {
		return err
	}
	c.token = out.Token
	return nil
}

func (c *Client) ListProjects() ([]models.Project, error) {
	var out []models.Project
	err := c.do(http.MethodGet, "/api/projects", nil, &out)
	return out, err
}

func (c *Client) CreateProject(p models.Project) (*models.Project, error) {
	var out models.Project
	if err := c.do(http.MethodPost, "/api/projects", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProject(id string, p models.Project) (*models.Project, error) {
	var out models.Project
	if err := c.do(http.MethodPut, "/api/projects/"+id, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProject(id string) (*models.Project, error) {
	var out struct {
		Deleted models.Project `json:"deletedProject"`
	}
	if err := c.do(http.MethodDelete, "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Deleted, nil
}

func (c *Client) ListExperiences() ([]models.Experience, error) {
	var out []models.Experience
	err := c.do(http.MethodGet, "/api/experiences", nil, &out)
	return out, err
}

func (c *Client) CreateExperience(e models.Experience) (*models.Experience, error) {
	var out models.Experience
	if err := c.do(http.MethodPost, "/api/experiences", e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateExperience(id string, e models.Experience) (*models.Experience, error) {
	var out models.Experience
	if err := c.do(http.MethodPut, "/api/experiences/"+id, e, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteExperience(id string) (*models.Experience, error) {
	var out struct {
		Deleted models.Experience `json:"deletedExperience"`
	}
	if err := c.do(http.MethodDelete, "/api/experiences/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Deleted, nil
}

func (c *Client) ListCertifications() ([]models.Certification, error) {
	var out []models.Certification
	err := c.do(http.MethodGet, "/api/certifications", nil, &out)
	return out, err
}

func (c *Client) CreateCertification(cert models.Certification) (*models.Certification, error) {
	var out models.Certification
	if err := c.do(http.MethodPost, "/api/certifications", cert, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCertification(id string, cert models.Certification) (*models.Certification, error) {
	var out models.Certification
	if err := c.do(http.MethodPut, "/api/certifications/"+id, cert, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteCertification(id string) (*models.Certification, error) {
	var out struct {
		Deleted models.Certification `json:"deletedCertification"`
	}
	if err := c.do(http.MethodDelete, "/api/certifications/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out.Deleted, nil
}

// SendContact submits a contact-form message.
func (c *Client) SendContact(name, email, subject, message string) error {
	payload := map[string]string{
		"name":    name,
		"email":   email,
		"subject": subject,
		"message": message,
	}
	return c.do(http.MethodPost, "/api/contact", payload, nil)
}

func (c *Client) do(method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		var errBody struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
