package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/netsim-lab/brite-as/topo"
)

// runGenerate builds the model from cfg, generates one topology using the
// configured edge list and writes it to out as YAML.
func runGenerate(cfg *topo.ModelConfig, out io.Writer, reg prometheus.Registerer) error {
	model, err := topo.NewASModel(cfg, topo.NewMetrics(reg))
	if err != nil {
		return err
	}
	g, err := model.Generate(topo.EdgeList(cfg.Edges))
	if err != nil {
		return err
	}
	logrus.Infof("run %s: %d nodes, %d edges", model.RunID, g.NumNodes(), g.NumEdges())
	return topo.WriteYAML(out, topo.NewTopologyDoc(model, g))
}

// openOutput returns stdout for "-" or "", otherwise a created file.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	closed := false
	return f, func() {
		if closed {
			return
		}
		closed = true
		if err := f.Close(); err != nil {
			logrus.Warnf("closing %s: %v", path, err)
		}
		logrus.Debugf("Successfully wrote to '%s'", path)
	}, nil
}

// printMetrics writes the gathered families in the Prometheus text format.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "=== Generation Metrics ===")
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
