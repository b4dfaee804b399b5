// Package console is the interactive admin editor for the portfolio
// content. It starts unauthenticated, trades the shared passphrase for
// a bearer token through the API client, then eagerly loads all three
// content lists and drives add/edit/delete against the selected tab.
//
// The three content types differ only in their field sets, so the
// console runs one generic CRUD loop over per-entity descriptors
// instead of three parallel code paths.
package console

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hetpatel09/portfolio-api/internal/client"
	"github.com/hetpatel09/portfolio-api/internal/utils"
)

// Field describes one editable attribute of a content type.
type Field struct {
	Key   string
	Label string
	List  bool
}

// record is a content document in wire form.
type record = map[string]any

type entityOps struct {
	list   func() ([]record, error)
	create func(record) (record, error)
	update func(id string, rec record) (record, error)
	remove func(id string) error
}

type entity struct {
	name     string
	singular string
	fields   []Field
	ops      entityOps
	records  []record
}

type Console struct {
	client        *client.Client
	in            *bufio.Scanner
	out           io.Writer
	tabs          []string
	entities      map[string]*entity
	active        string
	authenticated bool
}

func New(cl *client.Client, in io.Reader, out io.Writer) *Console {
	c := &Console{
		client:   cl,
		in:       bufio.NewScanner(in),
		out:      out,
		tabs:     []string{"projects", "experiences", "certifications"},
		entities: map[string]*entity{},
		active:   "projects",
	}

	c.entities["projects"] = &entity{
		name:     "projects",
		singular: "project",
		fields: []Field{
			{Key: "category", Label: "Category"},
			{Key: "title", Label: "Title"},
			{Key: "description", Label: "Description"},
			{Key: "technologies", Label: "Technologies (comma-separated)", List: true},
			{Key: "githubUrl", Label: "GitHub URL"},
			{Key: "projectUrl", Label: "Project URL"},
		},
		ops: bindEntity(cl.ListProjects, cl.CreateProject, cl.UpdateProject, cl.DeleteProject),
	}

	c.entities["experiences"] = &entity{
		name:     "experiences",
		singular: "experience",
		fields: []Field{
			{Key: "title", Label: "Title"},
			{Key: "company", Label: "Company"},
			{Key: "location", Label: "Location"},
			{Key: "startDate", Label: "Start date"},
			{Key: "endDate", Label: "End date (empty = current)"},
			{Key: "description", Label: "Description"},
			{Key: "technologies", Label: "Technologies (comma-separated)", List: true},
			{Key: "achievements", Label: "Achievements (comma-separated)", List: true},
		},
		ops: bindEntity(cl.ListExperiences, cl.CreateExperience, cl.UpdateExperience, cl.DeleteExperience),
	}

	c.entities["certifications"] = &entity{
		name:     "certifications",
		singular: "certification",
		fields: []Field{
			{Key: "name", Label: "Name"},
			{Key: "organization", Label: "Organization"},
			{Key: "verificationUrl", Label: "Verification URL"},
			{Key: "description", Label: "Description"},
			{Key: "skills", Label: "Skills (comma-separated)", List: true},
		},
		ops: bindEntity(cl.ListCertifications, cl.CreateCertification, cl.UpdateCertification, cl.DeleteCertification),
	}

	return c
}

// bindEntity adapts a typed client API to the wire-form records the
// console works with.
func bindEntity[T any](
	list func() ([]T, error),
	create func(T) (*T, error),
	update func(string, T) (*T, error),
	remove func(string) (*T, error),
) entityOps {
	return entityOps{
		list: func() ([]record, error) {
			items, err := list()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i := range items {
				rec, err := toRecord(items[i])
				if err != nil {
					return nil, err
				}
				out[i] = rec
			}
			return out, nil
		},
		create: func(rec record) (record, error) {
			doc, err := fromRecord[T](rec)
			if err != nil {
				return nil, err
			}
			saved, err := create(doc)
			if err != nil {
				return nil, err
			}
			return toRecord(saved)
		},
		update: func(id string, rec record) (record, error) {
			doc, err := fromRecord[T](rec)
			if err != nil {
				return nil, err
			}
			saved, err := update(id, doc)
			if err != nil {
				return nil, err
			}
			return toRecord(saved)
		},
		remove: func(id string) error {
			_, err := remove(id)
			return err
		},
	}
}

func toRecord(v any) (record, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func fromRecord[T any](rec record) (T, error) {
	var out T
	raw, err := json.Marshal(rec)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

// Run drives the console until the input ends or the user quits.
func (c *Console) Run() error {
	if err := c.login(); err != nil || !c.authenticated {
		return err
	}

	if err := c.fetchAll(); err != nil {
		fmt.Fprintf(c.out, "Error loading content: %v\n", err)
	}

	c.printHelp()
	for {
		fmt.Fprintf(c.out, "%s> ", c.active)
		line, ok := c.readLine()
		if !ok {
			return nil
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "tab":
			c.switchTab(args)
		case "list":
			c.printList()
		case "add":
			c.add()
		case "edit":
			c.edit(args)
		case "delete":
			c.delete(args)
		case "refresh":
			if err := c.fetchAll(); err != nil {
				fmt.Fprintf(c.out, "Error loading content: %v\n", err)
			}
		case "help":
			c.printHelp()
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(c.out, "Unknown command %q, try 'help'\n", args[0])
		}
	}
}

func (c *Console) login() error {
	for {
		fmt.Fprint(c.out, "Admin password: ")
		password, ok := c.readLine()
		if !ok {
			return nil
		}
		if password == "" {
			continue
		}
		if err := c.client.Login(password); err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) {
				fmt.Fprintln(c.out, "Invalid password")
				continue
			}
			return err
		}
		c.authenticated = true
		return nil
	}
}

// fetchAll loads all three content lists in parallel.
func (c *Console) fetchAll() error {
	tasks := make([]utils.ParallelTask, len(c.tabs))
	for i, name := range c.tabs {
		ops := c.entities[name].ops
		tasks[i] = func() (interface{}, error) {
			return ops.list()
		}
	}

	results, errs := utils.RunParallelTasks(tasks)
	for i, name := range c.tabs {
		if errs[i] != nil {
			return errs[i]
		}
		c.entities[name].records = results[i].([]record)
	}
	return nil
}

func (c *Console) switchTab(args []string) {
	if len(args) < 2 {
		fmt.Fprintf(c.out, "Usage: tab <%s>\n", strings.Join(c.tabs, "|"))
		return
	}
	if _, ok := c.entities[args[1]]; !ok {
		fmt.Fprintf(c.out, "Unknown tab %q\n", args[1])
		return
	}
	c.active = args[1]
	c.printList()
}

func (c *Console) printList() {
	ent := c.entities[c.active]
	if len(ent.records) == 0 {
		fmt.Fprintf(c.out, "No %s\n", ent.name)
		return
	}
	for i, rec := range ent.records {
		fmt.Fprintf(c.out, "%3d. %s\n", i+1, summarize(ent, rec))
	}
}

// summarize renders one record as a single list line using its first
// two fields.
func summarize(ent *entity, rec record) string {
	parts := make([]string, 0, 2)
	for _, f := range ent.fields[:2] {
		parts = append(parts, displayValue(rec[f.Key]))
	}
	return strings.Join(parts, " — ")
}

func (c *Console) add() {
	ent := c.entities[c.active]
	rec := record{}
	for _, f := range ent.fields {
		fmt.Fprintf(c.out, "%s: ", f.Label)
		line, ok := c.readLine()
		if !ok {
			return
		}
		rec[f.Key] = parseValue(f, line)
	}

	saved, err := ent.ops.create(rec)
	if err != nil {
		fmt.Fprintf(c.out, "Error saving %s: %v\n", ent.singular, err)
		return
	}
	ent.records = append(ent.records, saved)
	fmt.Fprintf(c.out, "Created %s %s\n", ent.singular, displayValue(saved["id"]))
}

func (c *Console) edit(args []string) {
	ent := c.entities[c.active]
	rec, ok := c.pick(ent, args)
	if !ok {
		return
	}

	edited := record{}
	for k, v := range rec {
		edited[k] = v
	}
	for _, f := range ent.fields {
		fmt.Fprintf(c.out, "%s [%s]: ", f.Label, displayValue(rec[f.Key]))
		line, lineOK := c.readLine()
		if !lineOK {
			return
		}
		// Enter keeps the current value.
		if line == "" {
			continue
		}
		edited[f.Key] = parseValue(f, line)
	}

	id := displayValue(rec["id"])
	saved, err := ent.ops.update(id, edited)
	if err != nil {
		fmt.Fprintf(c.out, "Error saving %s: %v\n", ent.singular, err)
		return
	}
	for i := range ent.records {
		if displayValue(ent.records[i]["id"]) == id {
			ent.records[i] = saved
			break
		}
	}
	fmt.Fprintf(c.out, "Updated %s %s\n", ent.singular, id)
}

func (c *Console) delete(args []string) {
	ent := c.entities[c.active]
	rec, ok := c.pick(ent, args)
	if !ok {
		return
	}

	fmt.Fprint(c.out, "Are you sure you want to delete this item? (y/N): ")
	answer, lineOK := c.readLine()
	if !lineOK || !strings.EqualFold(answer, "y") {
		fmt.Fprintln(c.out, "Cancelled")
		return
	}

	id := displayValue(rec["id"])
	if err := ent.ops.remove(id); err != nil {
		fmt.Fprintf(c.out, "Error deleting %s: %v\n", ent.singular, err)
		return
	}
	for i := range ent.records {
		if displayValue(ent.records[i]["id"]) == id {
			ent.records = append(ent.records[:i], ent.records[i+1:]...)
			break
		}
	}
	fmt.Fprintf(c.out, "Deleted %s %s\n", ent.singular, id)
}

// pick resolves a 1-based list index argument to a record.
func (c *Console) pick(ent *entity, args []string) (record, bool) {
	if len(args) < 2 {
		fmt.Fprintf(c.out, "Usage: %s <number>\n", args[0])
		return nil, false
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(ent.records) {
		fmt.Fprintf(c.out, "No such %s, run 'list' first\n", ent.singular)
		return nil, false
	}
	return ent.records[n-1], true
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "Commands: tab <projects|experiences|certifications>, list, add, edit <n>, delete <n>, refresh, help, quit")
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// parseValue converts one line of input to a record value. List fields
// are comma separated; blank entries are dropped.
func parseValue(f Field, line string) any {
	if !f.List {
		return line
	}
	items := []string{}
	for _, s := range strings.Split(line, ",") {
		if s = strings.TrimSpace(s); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func displayValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
