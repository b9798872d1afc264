package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hupe1980/rowview"
)

// DumpCmd prints the surviving rows.
type DumpCmd struct {
	QueryFlags

	Skip  []int    `name:"skip" help:"Physical row positions to hide"`
	Where []string `name:"where" placeholder:"COL=VALUE" help:"Hide rows whose column renders as VALUE"`
}

func (c *DumpCmd) Run(logger *rowview.Logger) error {
	cur, err := c.open(context.Background(), logger, c.Skip)
	if err != nil {
		return err
	}

	for _, w := range c.Where {
		if _, err := removeWhere(cur, w); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	return cur.ForEach(func(it *rowview.Iterator) error {
		return it.Dump(out)
	})
}

// removeWhere hides every row whose column renders exactly as the value in
// a COL=VALUE expression.
func removeWhere(c *rowview.Cursor, expr string) (int, error) {
	col, value, ok := strings.Cut(expr, "=")
	if !ok {
		return 0, fmt.Errorf("invalid filter %q: want COL=VALUE", expr)
	}

	index := -1
	for i, name := range c.Columns() {
		if strings.EqualFold(name, col) {
			index = i
			break
		}
	}
	if index < 0 {
		return 0, fmt.Errorf("unknown column %q", col)
	}

	return c.RemoveIf(func(r rowview.Row) bool {
		v, err := r.FieldString(index)
		return err == nil && v == value
	}), nil
}
