package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// StudentView is the field-renamed shape the student page consumes. Course
// and Year pass through unchanged; the other fields are renamed on read and
// renamed back on write.
type StudentView struct {
	ID     string
	FName  string
	LName  string
	MName  string
	Course string
	Year   string
}

// studentRecord is the wire shape of a student.
type studentRecord struct {
	ID         string `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	MiddleName string `json:"middleName"`
	Course     string `json:"course"`
	Year       string `json:"year"`
}

func (r studentRecord) view() StudentView {
	return StudentView{
		ID:     r.ID,
		FName:  r.FirstName,
		LName:  r.LastName,
		MName:  r.MiddleName,
		Course: r.Course,
		Year:   r.Year,
	}
}

func record(v StudentView) studentRecord {
	return studentRecord{
		ID:         v.ID,
		FirstName:  v.FName,
		LastName:   v.LName,
		MiddleName: v.MName,
		Course:     v.Course,
		Year:       v.Year,
	}
}

// StudentPage holds the student list for one page load. Mutations update the
// local list only; Load is the only call that reads server state.
type StudentPage struct {
	c        *Client
	mutex    sync.Mutex
	students []StudentView
}

func (c *Client) Students() *StudentPage {
	return &StudentPage{c: c}
}

// Load replaces the snapshot with the server's current student list.
func (p *StudentPage) Load(ctx context.Context) error {
	var records []studentRecord
	if err := p.c.do(ctx, http.MethodGet, "/students", nil, &records); err != nil {
		return err
	}

	students := make([]StudentView, 0, len(records))
	for _, r := range records {
		students = append(students, r.view())
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.students = students
	return nil
}

// Add creates the student on the server and appends the submitted view to
// the snapshot.
func (p *StudentPage) Add(ctx context.Context, s StudentView) error {
	if err := p.c.do(ctx, http.MethodPost, "/students", record(s), nil); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.students = append(p.students, s)
	return nil
}

// Update replaces the student whose ID matches id, on the server and then in
// the snapshot.
func (p *StudentPage) Update(ctx context.Context, id string, s StudentView) error {
	path := "/students/" + url.PathEscape(id)
	if err := p.c.do(ctx, http.MethodPut, path, record(s), nil); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	for i := range p.students {
		if p.students[i].ID == id {
			p.students[i] = s
		}
	}
	return nil
}

// Delete removes the student on the server and filters it out of the
// snapshot.
func (p *StudentPage) Delete(ctx context.Context, id string) error {
	path := "/students/" + url.PathEscape(id)
	if err := p.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()
	filtered := p.students[:0]
	for _, s := range p.students {
		if s.ID != id {
			filtered = append(filtered, s)
		}
	}
	p.students = filtered
	return nil
}

// Snapshot returns a copy of the local list as of the last Load or local
// mutation. It is not reconciled against the server.
func (p *StudentPage) Snapshot() []StudentView {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	out := make([]StudentView, len(p.students))
	copy(out, p.students)
	return out
}
