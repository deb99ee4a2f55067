package main

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianoliveira/hrdesk/cmd"
	"github.com/cristianoliveira/hrdesk/internal/config"
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/format"
	"github.com/cristianoliveira/hrdesk/internal/query"
	"github.com/cristianoliveira/hrdesk/internal/views"
)

type listClient interface {
	List(kind domain.Kind, state query.State, pageSize int) (views.Page, error)
	Registry() *views.Registry
	PageSize() int
}

const listCommandLong = `List the synced records of one kind.

USAGE:
    hrdesk list <kind> [OPTIONS]

KINDS:
    employees, departments, attendance, leave-requests, job-postings,
    onboarding, audit-logs, notifications

OPTIONS:
    --search <term>        Match the term against the kind's searchable fields
    --filter <name=value>  Equality filter, repeatable (e.g. status=PENDING)
    --from <date>          Lower bound of the kind's date filter (YYYY-MM-DD or RFC3339)
    --to <date>            Upper bound of the kind's date filter, inclusive
    --sort <field>         Sort field (default depends on the kind)
    --order <order>        Sort order: asc, desc
    --page <n>             Page to show (clamped to the last page)
    --page-size <n>        Records per page (default from page_size)
    --format <format>      Output format: table (default), compact, json
    --template <text>      One line per record from {{field}} placeholders,
                           e.g. '{{employee.name}}\t{{status}}'; overrides --format
    -h, --help             Show this help`

type listOptions struct {
	search   string
	filters  []string
	from     string
	to       string
	sort     string
	order    string
	page     int
	pageSize int
	format   string
	template string
}

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(open func() (listClient, error)) *cobra.Command {
	if open == nil {
		panic("NewListCmd: open dependency cannot be nil")
	}

	var opts listOptions
	listCmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "List records of one kind",
		Long:  listCommandLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := open()
			if err != nil {
				return err
			}
			return runList(client, args[0], opts, cmd.OutOrStdout())
		},
	}
	registerListFlags(listCmd, &opts)
	return listCmd
}

func registerListFlags(c *cobra.Command, opts *listOptions) {
	c.Flags().StringVar(&opts.search, "search", "", "Match the term against searchable fields")
	c.Flags().StringArrayVar(&opts.filters, "filter", nil, "Equality filter name=value, repeatable")
	c.Flags().StringVar(&opts.from, "from", "", "Lower bound of the date filter")
	c.Flags().StringVar(&opts.to, "to", "", "Upper bound of the date filter, inclusive")
	c.Flags().StringVar(&opts.sort, "sort", "", "Sort field")
	c.Flags().StringVar(&opts.order, "order", "", "Sort order: asc, desc")
	c.Flags().IntVar(&opts.page, "page", 0, "Page to show")
	c.Flags().IntVar(&opts.pageSize, "page-size", 0, "Records per page")
	c.Flags().StringVar(&opts.format, "format", "", "Output format: table, compact, json")
	c.Flags().StringVar(&opts.template, "template", "", "Line template with {{field}} placeholders")
}

func runList(client listClient, kindArg string, opts listOptions, w io.Writer) error {
	kind, err := domain.ParseKind(kindArg)
	if err != nil {
		return err
	}
	view, err := client.Registry().Get(kind)
	if err != nil {
		return err
	}

	formatter, err := listFormatter(opts)
	if err != nil {
		return err
	}

	params, err := listParams(view, opts)
	if err != nil {
		return err
	}
	state, pageSize, err := views.ParseParams(view, params, client.PageSize())
	if err != nil {
		return err
	}

	page, err := client.List(kind, state, pageSize)
	if err != nil {
		return fmt.Errorf("list %s: %w", kind, err)
	}
	return formatter.FormatPage(page, w)
}

func listFormatter(opts listOptions) (format.Formatter, error) {
	if opts.template != "" {
		return &format.TemplateFormatter{Template: opts.template}, nil
	}
	formatName := opts.format
	if formatName == "" {
		formatName = config.Get("output_format", string(format.FormatterTypeTable))
	}
	ft, err := format.ParseFormatterType(formatName)
	if err != nil {
		return nil, err
	}
	return format.NewFormatter(ft), nil
}

// listParams translates command-line flags into request parameters.
func listParams(view views.View, opts listOptions) (url.Values, error) {
	params := url.Values{}
	set := func(key, value string) {
		if value != "" {
			params.Set(key, value)
		}
	}
	set("search", opts.search)
	set("sort", opts.sort)
	set("order", opts.order)
	if opts.page != 0 {
		params.Set("page", strconv.Itoa(opts.page))
	}
	if opts.pageSize != 0 {
		params.Set("page_size", strconv.Itoa(opts.pageSize))
	}

	for _, f := range opts.filters {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter %q (expected name=value)", f)
		}
		if !hasEqualityFilter(view, name) {
			return nil, fmt.Errorf("unknown filter %q for %s (available: %s)", name, view.Kind(), strings.Join(equalityFilters(view), ", "))
		}
		params.Set(name, strings.TrimSpace(value))
	}

	if opts.from != "" || opts.to != "" {
		name := view.DateFilter()
		if name == "" {
			return nil, fmt.Errorf("%s has no date filter", view.Kind())
		}
		set(name+"_from", opts.from)
		set(name+"_to", opts.to)
	}
	return params, nil
}

func equalityFilters(view views.View) []string {
	var names []string
	for _, def := range view.Filters() {
		if def.Type == query.FilterEquals {
			names = append(names, def.Name)
		}
	}
	return names
}

func hasEqualityFilter(view views.View, name string) bool {
	for _, n := range equalityFilters(view) {
		if n == name {
			return true
		}
	}
	return false
}

func openListClient() (listClient, error) { return rt.service() }

// listCmd represents the list command
var listCmd = NewListCmd(openListClient)

func init() {
	cmd.RootCmd.AddCommand(listCmd)
}
