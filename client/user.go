package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// UserView is the user page's row shape. User fields keep their wire names;
// only the identifier differs (_id on the wire). The server never returns
// password material, so none is held here.
type UserView struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserPage holds the user list for one page load, mutated locally after each
// successful write like StudentPage.
type UserPage struct {
	c     *Client
	mutex sync.Mutex
	users []UserView
}

func (c *Client) Users() *UserPage {
	return &UserPage{c: c}
}

// Load replaces the snapshot with the server's current user list.
func (p *UserPage) Load(ctx context.Context) error {
	var users []UserView
	if err := p.c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.users = users
	return nil
}

// Update replaces the user's fields wholesale, then patches the snapshot
// entry with the same id.
func (p *UserPage) Update(ctx context.Context, id, username, email, password string) error {
	path := "/updateUser/" + url.PathEscape(id)
	body := map[string]string{"username": username, "email": email, "password": password}
	if err := p.c.do(ctx, http.MethodPut, path, body, nil); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	for i := range p.users {
		if p.users[i].ID == id {
			p.users[i].Username = username
			p.users[i].Email = email
		}
	}
	return nil
}

// Delete removes the user on the server and filters it out of the snapshot.
func (p *UserPage) Delete(ctx context.Context, id string) error {
	path := "/deleteUser/" + url.PathEscape(id)
	if err := p.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	filtered := p.users[:0]
	for _, u := range p.users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	p.users = filtered
	return nil
}

// Snapshot returns a copy of the local list as of the last Load or local
// mutation.
func (p *UserPage) Snapshot() []UserView {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := make([]UserView, len(p.users))
	copy(out, p.users)
	return out
}
