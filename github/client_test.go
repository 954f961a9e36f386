package github

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jacobpatterson1549/fetch-happen/fetch"
	"github.com/jacobpatterson1549/fetch-happen/fetch/fetchtest"
)

func TestClientBranch(t *testing.T) {
	branchTests := []struct {
		code      int
		body      string
		fetchErr  error
		token     string
		wantOk    bool
		wantAuth  string
		wantCode  int
		wantFetch bool
	}{
		{
			code:      200,
			body:      `{"name":"master","commit":{"sha":"abc","url":"u"}}`,
			wantOk:    true,
			wantFetch: true,
		},
		{
			code:      200,
			body:      `{"name":"master","commit":{"sha":"abc","url":"u"}}`,
			token:     "s3cr3t",
			wantOk:    true,
			wantAuth:  "Bearer s3cr3t",
			wantFetch: true,
		},
		{
			code:      404,
			body:      `{"message":"Branch not found"}`,
			wantCode:  404,
			wantFetch: true,
		},
		{
			code:      200,
			body:      `{"name":`,
			wantFetch: true,
		},
		{
			fetchErr:  errors.New("network unreachable"),
			wantFetch: true,
		},
	}
	for i, test := range branchTests {
		tr := fetchtest.Transport{
			RespondFunc: func(req fetchtest.Recorded) (*fetch.HostResponse, error) {
				if test.fetchErr != nil {
					return nil, test.fetchErr
				}
				return fetchtest.NewResponse(test.code, test.body), nil
			},
		}
		c := Client{
			HTTP: fetch.Client{
				Transport: &tr,
			},
			BaseURL:   "https://github.example.com/",
			Token:     test.token,
			UserAgent: "fetch-happen-test",
		}
		got, err := c.Branch(context.Background(), "jacobpatterson1549/fetch-happen", "master")
		requests := tr.Requests()
		var statusErr *fetch.StatusError
		switch {
		case len(requests) != 1:
			t.Errorf("Test %v: wanted one request, got %v", i, len(requests))
		case requests[0].URL != "https://github.example.com/repos/jacobpatterson1549/fetch-happen/branches/master":
			t.Errorf("Test %v: unwanted url: %v", i, requests[0].URL)
		case requests[0].Method != fetch.MethodGet:
			t.Errorf("Test %v: wanted get, got %v", i, requests[0].Method)
		case requests[0].Headers["Accept"] != "application/vnd.github.v3+json":
			t.Errorf("Test %v: wanted github accept header, got %v", i, requests[0].Headers)
		case requests[0].Headers["User-Agent"] != "fetch-happen-test":
			t.Errorf("Test %v: wanted user agent header, got %v", i, requests[0].Headers)
		case requests[0].Headers["Authorization"] != test.wantAuth:
			t.Errorf("Test %v: wanted authorization %q, got %q", i, test.wantAuth, requests[0].Headers["Authorization"])
		case !test.wantOk:
			switch {
			case err == nil:
				t.Errorf("Test %v: wanted error", i)
			case test.wantCode != 0 && (!errors.As(err, &statusErr) || statusErr.Code != test.wantCode):
				t.Errorf("Test %v: wanted status error with code %v, got %v", i, test.wantCode, err)
			}
		case err != nil:
			t.Errorf("Test %v: unwanted error: %v", i, err)
		case got.Name != "master", got.Commit.SHA != "abc", got.Commit.URL != "u":
			t.Errorf("Test %v: unwanted branch: %#v", i, got)
		}
	}
}

func TestClientCreateIssue(t *testing.T) {
	tr := fetchtest.Transport{
		RespondFunc: func(req fetchtest.Recorded) (*fetch.HostResponse, error) {
			return fetchtest.NewResponse(201, `{"number":1347,"title":"Found a bug","state":"open"}`), nil
		},
	}
	c := Client{
		HTTP: fetch.Client{
			Transport: &tr,
		},
		Token: "YOUR_GITHUB_TOKEN",
	}
	issue := Issue{
		Title: "Found a bug",
		Body:  "I'm having a problem with this.",
	}
	got, err := c.CreateIssue(context.Background(), "octocat/hello-world", issue)
	if err != nil {
		t.Fatalf("unwanted error: %v", err)
	}
	req := tr.Requests()[0]
	switch {
	case req.URL != DefaultBaseURL+"/repos/octocat/hello-world/issues":
		t.Errorf("unwanted url: %v", req.URL)
	case req.Method != fetch.MethodPost:
		t.Errorf("wanted post, got %v", req.Method)
	case req.Headers["Content-Type"] != "application/json":
		t.Errorf("wanted json content type, got %v", req.Headers)
	case req.BodyText != `{"title":"Found a bug","body":"I'm having a problem with this."}`:
		t.Errorf("unwanted body: %v", req.BodyText)
	case got.Get("number").Int() != 1347:
		t.Errorf("wanted issue number, got %v", got.Raw)
	}
}

func TestClientCreateIssueStatusError(t *testing.T) {
	tr := fetchtest.Transport{
		RespondFunc: func(req fetchtest.Recorded) (*fetch.HostResponse, error) {
			return fetchtest.NewResponse(401, `{"message":"Bad credentials"}`), nil
		},
	}
	c := Client{
		HTTP: fetch.Client{
			Transport: &tr,
		},
	}
	_, err := c.CreateIssue(context.Background(), "octocat/hello-world", Issue{Title: "t"})
	var statusErr *fetch.StatusError
	switch {
	case !errors.As(err, &statusErr):
		t.Errorf("wanted StatusError, got %v", err)
	case statusErr.Message != "HTTP Error 401":
		t.Errorf("unwanted message: %v", statusErr.Message)
	}
}

func TestClientCreateIssueInvalidResponse(t *testing.T) {
	tr := fetchtest.Transport{
		RespondFunc: func(req fetchtest.Recorded) (*fetch.HostResponse, error) {
			return fetchtest.NewResponse(201, `<html>created</html>`), nil
		},
	}
	c := Client{
		HTTP: fetch.Client{
			Transport: &tr,
		},
	}
	_, err := c.CreateIssue(context.Background(), "octocat/hello-world", Issue{Title: "t"})
	var jsonErr *fetch.JSONError
	switch {
	case !errors.As(err, &jsonErr):
		t.Errorf("wanted JSONError, got %v", err)
	case !strings.HasPrefix(err.Error(), "reading created issue: "):
		t.Errorf("wanted error to describe the step, got %v", err)
	}
}
