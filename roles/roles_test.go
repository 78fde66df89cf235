package roles

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	workos "github.com/workos-community/workos-go"
)

func TestListRoles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roles" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk_example_123456789" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{
			"data": [{
				"object": "role",
				"id": "role_01EHQMYV6MBK39QC5PZXHY59C3",
				"slug": "admin",
				"name": "Admin",
				"description": "Full access to the organization.",
				"type": "EnvironmentRole",
				"permissions": ["posts:create", "posts:delete"],
				"created_at": "2021-06-25T19:07:33.155Z",
				"updated_at": "2021-06-25T19:07:33.155Z"
			}]
		}`))
	}))
	defer srv.Close()

	c, err := workos.New(workos.Config{
		APIKey:  "sk_example_123456789",
		BaseURL: srv.URL,
	})
	if err != nil {
		t.Fatalf("workos.New: %v", err)
	}

	res, err := New(c).ListRoles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Data) != 1 {
		t.Fatalf("data len = %d", len(res.Data))
	}
	role := res.Data[0]
	if role.Slug != "admin" {
		t.Errorf("slug = %q", role.Slug)
	}
	if role.Type != RoleTypeEnvironment {
		t.Errorf("type = %q", role.Type)
	}
	if len(role.Permissions) != 2 {
		t.Errorf("permissions = %v", role.Permissions)
	}
}
