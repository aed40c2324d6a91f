package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/hardik-satasiya/makepad/cmd/livectl/internal/config"
	"github.com/hardik-satasiya/makepad/internal/logging"
	liveerrors "github.com/hardik-satasiya/makepad/pkg/errors"
	"github.com/hardik-satasiya/makepad/pkg/live"
	"github.com/hardik-satasiya/makepad/pkg/livedoc"
	"github.com/hardik-satasiya/makepad/pkg/livenode"
	"github.com/hardik-satasiya/makepad/pkg/registry"
	"github.com/hardik-satasiya/makepad/pkg/widgets"
)

// project is a loaded live project: its resolved settings and a context
// holding every document and widget type.
type project struct {
	cfg     *config.Resolved
	cx      *live.Cx
	logger  *slog.Logger
	metrics *prometheus.Registry
}

func loadProject(cmd *cobra.Command, opts *rootOptions) (*project, error) {
	root, err := config.FindProjectRoot(opts.dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(opts.logLevel)
	logger := logging.NewWriter(cmd.ErrOrStderr(), level)
	reg := prometheus.NewRegistry()
	metrics, err := live.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	handler := &liveerrors.LogHandler{Logger: logger, Verbose: level <= slog.LevelDebug}
	liveerrors.SetHandler(handler)
	cx := live.NewCx(
		live.WithLogger(logger),
		live.WithMetrics(metrics),
		live.WithErrorHandler(handler),
	)
	widgets.Register(cx)

	for _, doc := range cfg.Documents {
		nodes, err := livedoc.Load(doc.Path, doc.Format)
		if err != nil {
			return nil, err
		}
		if _, err := cx.Registry().Register(doc.Module, doc.Path, nodes); err != nil {
			return nil, err
		}
		logger.Debug("document loaded", "module", string(doc.Module), "path", doc.Path, "nodes", len(nodes))
	}
	return &project{cfg: cfg, cx: cx, logger: logger, metrics: reg}, nil
}

// module resolves a module argument. Names without a dot in their first
// element are relative to the project module, as in live.yaml.
func (p *project) module(name string) (registry.ModuleID, error) {
	if first, _, _ := strings.Cut(name, "/"); !strings.Contains(first, ".") {
		name = p.cfg.ModulePath + "/" + name
	}
	mod, err := registry.ParseModuleID(name)
	if err != nil {
		return "", err
	}
	if _, ok := p.cx.Registry().ModuleToFile(mod); !ok {
		return "", fmt.Errorf("module %s is not loaded", mod)
	}
	return mod, nil
}

// build constructs the registered type typeName from the entry of a module.
// A panic in a component hook is reported and returned as a *PanicError.
func (p *project) build(moduleName, entry, typeName string) (obj live.Applier, lt live.LiveType, err error) {
	defer liveerrors.Recover("livectl.build", &err)
	mod, err := p.module(moduleName)
	if err != nil {
		return nil, live.LiveType{}, err
	}
	lt, ok := p.cx.TypeByName(livenode.ID(typeName))
	if !ok {
		return nil, live.LiveType{}, fmt.Errorf("unknown type %q", typeName)
	}
	ptr, ok := p.cx.Registry().Lookup(mod, livenode.ID(entry))
	if !ok {
		return nil, live.LiveType{}, fmt.Errorf("module %s has no entry %q", mod, entry)
	}
	obj, _ = p.cx.NewComponentFromPtr(lt, ptr)
	p.logger.Debug("component built", "type", lt.Name(), "ptr", ptr.String())
	return obj, lt, nil
}

// reportDiagnostics prints the diagnostics collected so far. With strict set
// any diagnostic is an error.
func (p *project) reportDiagnostics(cmd *cobra.Command, strict bool) error {
	diags := p.cx.TakeDiagnostics()
	for _, d := range diags {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
	}
	if strict && len(diags) > 0 {
		return fmt.Errorf("%d diagnostic(s) while applying", len(diags))
	}
	return nil
}

// finish prints the apply counters when --metrics is set.
func (p *project) finish(cmd *cobra.Command, opts *rootOptions) error {
	if !opts.metrics {
		return nil
	}
	families, err := p.metrics.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(out, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), m.GetCounter().GetValue())
		}
	}
	return nil
}

func formatLabels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}

// presentable rewrites packed colors as "#rrggbbaa" strings for output.
func presentable(v any) any {
	switch v := v.(type) {
	case uint32:
		return livedoc.FormatColor(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = presentable(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = presentable(item)
		}
		return out
	}
	return v
}
