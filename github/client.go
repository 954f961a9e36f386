// Package github calls the GitHub REST API using fetch requests.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the address of the public GitHub API.
const DefaultBaseURL = "https://api.github.com"

type (
	// Client makes requests to the GitHub API.
	Client struct {
		// HTTP creates the requests.
		HTTP fetch.Client
		// BaseURL is the root of the api.  DefaultBaseURL is used if it is empty.
		BaseURL string
		// Token authorizes requests if it is set.  It can be a personal access token or an app token.
		Token string
		// UserAgent identifies the client to GitHub, which requires it.
		UserAgent string
	}

	// Branch is a named reference to a commit.
	Branch struct {
		Name   string `json:"name"`
		Commit Commit `json:"commit"`
	}

	// Commit is the head of a branch.
	Commit struct {
		SHA string `json:"sha"`
		URL string `json:"url"`
	}

	// Issue is the content of a new issue.
	Issue struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
)

// Branch gets the branch of the repository, such as "master".
// The repo is the owner and name, such as "golang/go".
func (c Client) Branch(ctx context.Context, repo, branch string) (*Branch, error) {
	resp, err := c.request(fetch.MethodGet, "/repos/"+repo+"/branches/"+branch).Send(ctx)
	if err != nil {
		return nil, fmt.Errorf("requesting branch: %w", err)
	}
	if _, err := resp.ErrorForStatus(); err != nil {
		return nil, fmt.Errorf("getting branch %v of %v: %w", branch, repo, err)
	}
	b, err := fetch.DecodeJSON[Branch](resp)
	if err != nil {
		return nil, fmt.Errorf("reading branch: %w", err)
	}
	return &b, nil
}

// CreateIssue opens an issue on the repository, returning the issue GitHub created.
func (c Client) CreateIssue(ctx context.Context, repo string, issue Issue) (gjson.Result, error) {
	b, err := c.request(fetch.MethodPost, "/repos/"+repo+"/issues").JSON(issue)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("creating issue request: %w", err)
	}
	resp, err := b.Send(ctx)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("requesting issue creation: %w", err)
	}
	if _, err := resp.ErrorForStatus(); err != nil {
		return gjson.Result{}, fmt.Errorf("creating issue on %v: %w", repo, err)
	}
	v, err := resp.JSONValue()
	if err != nil {
		return gjson.Result{}, fmt.Errorf("reading created issue: %w", err)
	}
	return v, nil
}

// request creates a builder for a call to the api path.
func (c Client) request(method fetch.Method, path string) fetch.RequestBuilder {
	baseURL := c.BaseURL
	if len(baseURL) == 0 {
		baseURL = DefaultBaseURL
	}
	url := strings.TrimSuffix(baseURL, "/") + path
	b := c.HTTP.Request(method, url).
		Header("Accept", "application/vnd.github.v3+json")
	if len(c.UserAgent) != 0 {
		b = b.Header("User-Agent", c.UserAgent)
	}
	if len(c.Token) != 0 {
		b = b.BearerAuth(c.Token)
	}
	return b
}
