package statplug

import (
	"context"
	"fmt"
	"io"

	"statplug/adapters/distio"
	"statplug/adapters/distributions"
	"statplug/adapters/excel"
	"statplug/adapters/report"
	"statplug/adapters/testtools"
	"statplug/domain/core"
	"statplug/domain/dist"
	"statplug/domain/table"
	"statplug/internal"
	"statplug/internal/config"
	apperrors "statplug/internal/errors"
	"statplug/ports"
)

// Plugin bundles the three adapter groups - test tools, distribution
// constructors, and distribution IO - behind one registration call.
type Plugin struct {
	cfg     *config.Config
	log     *internal.Logger
	catalog *distributions.Catalog
	tools   []ports.TestTool
	multi   []ports.MultiCompareTool
	battery *testtools.Battery
	store   *distio.YAMLStore
}

// New creates a plugin from the given configuration
func New(cfg *config.Config) *Plugin {
	catalog := distributions.NewCatalog()
	tools := testtools.DefaultTools(cfg.Tests.VarianceGate)
	return &Plugin{
		cfg:     cfg,
		log:     internal.DefaultLogger,
		catalog: catalog,
		tools:   tools,
		multi:   testtools.DefaultMultiCompareTools(),
		battery: testtools.NewBattery(tools),
		store:   distio.NewYAMLStore(catalog),
	}
}

// NewDefault creates a plugin with environment-backed configuration
func NewDefault() (*Plugin, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(cfg), nil
}

// Catalog exposes the distribution catalog for direct host integrations
func (p *Plugin) Catalog() ports.DistCatalog { return p.catalog }

// Store exposes the distribution record store for direct host integrations
func (p *Plugin) Store() ports.DistStore { return p.store }

// FitRequest asks the fit action to re-estimate a handle's parameters
// from observations.
type FitRequest struct {
	Handle       dist.Handle
	Observations []float64
}

// SampleRequest asks the sampling action for n seeded draws. A zero N
// falls back to the configured default size; the seed is used as given,
// so seed 0 is a valid request.
type SampleRequest struct {
	Distribution dist.Distribution
	N            int
	Seed         uint64
}

// Register wires every action and the distribution file type into the
// host registry. Registration is idempotent per host only as far as the
// host makes it; calling twice against the same registry fails the same
// way any duplicate plugin would.
func (p *Plugin) Register(host ports.Host) error {
	for _, tool := range p.tools {
		if err := host.RegisterAction(coded(p.testAction(tool))); err != nil {
			return err
		}
	}
	for _, tool := range p.multi {
		if err := host.RegisterAction(coded(p.multiCompareAction(tool))); err != nil {
			return err
		}
	}
	if err := host.RegisterAction(coded(p.batteryAction())); err != nil {
		return err
	}

	for _, kind := range p.catalog.Kinds() {
		action, err := p.constructAction(kind)
		if err != nil {
			return err
		}
		if err := host.RegisterAction(coded(action)); err != nil {
			return err
		}
	}
	if err := host.RegisterAction(coded(p.fitAction())); err != nil {
		return err
	}
	if err := host.RegisterAction(coded(p.sampleAction())); err != nil {
		return err
	}
	if err := host.RegisterAction(coded(p.reportAction())); err != nil {
		return err
	}

	if err := host.RegisterFileType(p.fileType()); err != nil {
		return err
	}
	if err := host.RegisterFileType(p.tableFileType()); err != nil {
		return err
	}

	p.log.Info("registered %d test tools, %d post-hoc tools, %d distributions",
		len(p.tools), len(p.multi), len(p.catalog.Kinds()))
	return nil
}

func (p *Plugin) testAction(tool ports.TestTool) ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:test:" + tool.Name()),
		Title: tool.Title() + " ...",
		Menus: []string{p.cfg.Menus.TestMenu},
		Types: []table.ModelType{table.TypeTable},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			x, y, err := twoSamplesFromModel(in)
			if err != nil {
				return table.Model{}, err
			}
			res, err := tool.Run(ctx, x, y, ports.TwoSided)
			if err != nil {
				return table.Model{}, err
			}
			title := fmt.Sprintf("%s result of %s", tool.Title(), in.Title)
			comparison := [][]string{{"comparison", x.Name + " vs " + y.Name}}
			return testtools.RenderResult(title, res, comparison), nil
		},
	}
}

func (p *Plugin) multiCompareAction(tool ports.MultiCompareTool) ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:test-multi:" + tool.Name()),
		Title: tool.Title() + " ...",
		Menus: []string{p.cfg.Menus.TestMenu},
		Types: []table.ModelType{table.TypeTable},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			groups, err := samplesFromModel(in)
			if err != nil {
				return table.Model{}, err
			}
			res, err := tool.Compare(ctx, groups)
			if err != nil {
				return table.Model{}, err
			}
			title := fmt.Sprintf("%s result of %s", tool.Title(), in.Title)
			return testtools.RenderPairwise(title, res), nil
		},
	}
}

func (p *Plugin) batteryAction() ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:test:battery"),
		Title: "Run All Tests ...",
		Menus: []string{p.cfg.Menus.TestMenu},
		Types: []table.ModelType{table.TypeTable},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			x, y, err := twoSamplesFromModel(in)
			if err != nil {
				return table.Model{}, err
			}
			items := p.battery.Run(ctx, x, y, ports.TwoSided)
			title := fmt.Sprintf("Test battery result of %s", in.Title)
			return testtools.RenderBattery(title, items), nil
		},
	}
}

func (p *Plugin) constructAction(kind core.DistKind) (ports.Action, error) {
	desc, err := p.catalog.Lookup(kind)
	if err != nil {
		return ports.Action{}, err
	}
	return ports.Action{
		ID:    core.ActionID("statplug:dist-construct:" + kind.String()),
		Title: desc.Title + " ...",
		Menus: []string{p.cfg.Menus.DistMenu},
		Types: []table.ModelType{table.TypeParams},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			params := map[string]float64{}
			if in.Value != nil {
				var err error
				params, err = in.AsParams()
				if err != nil {
					return table.Model{}, err
				}
			}
			d, err := p.catalog.Construct(kind, params)
			if err != nil {
				return table.Model{}, err
			}
			return table.NewDistributionModel(desc.Title, d), nil
		},
	}, nil
}

func (p *Plugin) fitAction() ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:dist-convert:fit"),
		Title: "Fit Distribution ...",
		Menus: []string{p.cfg.Menus.DistMenu},
		Types: []table.ModelType{table.TypeDistribution},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			req, ok := in.Value.(FitRequest)
			if !ok {
				return table.Model{}, core.NewInvalidInputError("fit expects a distribution handle plus observations")
			}
			d, err := p.catalog.Fit(req.Handle, req.Observations)
			if err != nil {
				return table.Model{}, err
			}
			return table.NewDistributionModel(in.Title+" fitted", d), nil
		},
	}
}

func (p *Plugin) sampleAction() ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:dist-convert:sample"),
		Title: "Random Sampling ...",
		Menus: []string{p.cfg.Menus.DistMenu},
		Types: []table.ModelType{table.TypeDistribution},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			req, err := sampleRequestFromModel(in, p.cfg.Sampling)
			if err != nil {
				return table.Model{}, err
			}
			draws, err := distributions.Sample(req.Distribution, req.N, req.Seed, p.cfg.Sampling.MaxDraws)
			if err != nil {
				return table.Model{}, err
			}
			return table.NewArrayModel("Samples from "+in.Title, draws), nil
		},
	}
}

func (p *Plugin) reportAction() ports.Action {
	return ports.Action{
		ID:    core.ActionID("statplug:report:html"),
		Title: "Result to Report ...",
		Menus: []string{p.cfg.Menus.TestMenu},
		Types: []table.ModelType{table.TypeTable},
		Run: func(ctx context.Context, in table.Model) (table.Model, error) {
			out, err := report.HTML(in)
			if err != nil {
				return table.Model{}, err
			}
			return table.NewTextModel(in.Title+" report", out), nil
		},
	}
}

func (p *Plugin) fileType() ports.FileType {
	return ports.FileType{
		Slug:       p.cfg.IO.FileSlug,
		Title:      "Probability Distribution",
		Extensions: p.cfg.IO.Extensions,
		Read: func(r io.Reader) (table.Model, error) {
			h, err := p.store.Load(r)
			if err != nil {
				return table.Model{}, err
			}
			d, err := p.catalog.FromHandle(h)
			if err != nil {
				return table.Model{}, err
			}
			return table.NewDistributionModel(h.Kind.String(), d), nil
		},
		Write: func(m table.Model, w io.Writer) error {
			d, err := distributionFromModel(m)
			if err != nil {
				return err
			}
			return p.store.Save(d.Handle(), w)
		},
	}
}

func (p *Plugin) tableFileType() ports.FileType {
	return ports.FileType{
		Slug:       p.cfg.IO.TableSlug,
		Title:      "Sample Table",
		Extensions: p.cfg.IO.TableExtensions,
		Read: func(r io.Reader) (table.Model, error) {
			return excel.ReadTable(r, "imported samples")
		},
		Write: excel.WriteCSV,
	}
}

// coded wraps an action's failures at the dispatch boundary so the host
// always receives a stable error code alongside the domain sentinel.
func coded(a ports.Action) ports.Action {
	run := a.Run
	a.Run = func(ctx context.Context, in table.Model) (table.Model, error) {
		out, err := run(ctx, in)
		if err != nil {
			return table.Model{}, apperrors.Wrap(err, a.ID.String())
		}
		return out, nil
	}
	return a
}

func twoSamplesFromModel(in table.Model) (table.Sample, table.Sample, error) {
	samples, err := samplesFromModel(in)
	if err != nil {
		return table.Sample{}, table.Sample{}, err
	}
	if len(samples) < 2 {
		return table.Sample{}, table.Sample{}, core.NewInvalidInputError("two sample columns are required")
	}
	return samples[0], samples[1], nil
}

func samplesFromModel(in table.Model) ([]table.Sample, error) {
	rows, err := in.AsTable()
	if err != nil {
		return nil, err
	}
	return table.SamplesFromRows(rows)
}

func sampleRequestFromModel(in table.Model, defaults config.SamplingConfig) (SampleRequest, error) {
	switch v := in.Value.(type) {
	case SampleRequest:
		if v.Distribution == nil {
			return SampleRequest{}, core.NewInvalidInputError("sampling request has no distribution")
		}
		if v.N == 0 {
			v.N = defaults.DefaultSize
		}
		return v, nil
	case dist.Distribution:
		return SampleRequest{Distribution: v, N: defaults.DefaultSize, Seed: defaults.DefaultSeed}, nil
	}
	return SampleRequest{}, core.NewInvalidInputError("sampling expects a distribution model")
}

func distributionFromModel(m table.Model) (dist.Distribution, error) {
	d, ok := m.Value.(dist.Distribution)
	if !ok {
		return nil, core.NewInvalidInputError(fmt.Sprintf("model %q does not hold a distribution", m.Title))
	}
	return d, nil
}
