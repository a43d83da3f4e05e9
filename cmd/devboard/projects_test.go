package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilianohg/devboard/internal/catalog"
	"github.com/emilianohg/devboard/internal/engine"
)

func parseTechFlag(t *testing.T, value string) []string {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().StringSlice("tech", nil, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--tech", value}))
	tech, err := cmd.Flags().GetStringSlice("tech")
	require.NoError(t, err)
	return tech
}

func TestResolveTech_RepeatedTagKeptOnce(t *testing.T) {
	reg := catalog.NewRegistry(nil, nil)

	stack, err := resolveTech(reg, parseTechFlag(t, "React,Go,React"))
	require.NoError(t, err)

	ids := engine.NewIDSource(func() time.Time { return time.UnixMilli(1_700_000_000_000) })
	_, p, err := engine.AddProject(nil, engine.NewProjectInput{
		Title:       "Task Tracker",
		Description: "Kanban for small teams",
		Category:    catalog.WebDevelopment,
		TechStack:   stack,
	}, ids)
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Go"}, p.TechStack)
}

func TestResolveTech(t *testing.T) {
	reg := catalog.NewRegistry(nil, []string{"Zig"})

	tests := []struct {
		name    string
		in      []string
		want    []string
		wantErr bool
	}{
		{"canonical spelling", []string{"react", " node.js "}, []string{"React", "Node.js"}, false},
		{"configured extra", []string{"zig"}, []string{"Zig"}, false},
		{"blank entries skipped", []string{"", " ", "Go"}, []string{"Go"}, false},
		{"unknown tag", []string{"Go", "COBOL"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveTech(reg, tt.in)
			if tt.wantErr {
				assert.ErrorContains(t, err, "COBOL")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
