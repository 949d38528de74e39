// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"fa2dbg-core/kmergraph"
	"fa2dbg/internal/app"
	"fa2dbg/internal/report"
	"fa2dbg/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, argv ...string) (int, string, string) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(argv, &out, &errBuf)
	return code, out.String(), errBuf.String()
}

func mustRun(t *testing.T, argv ...string) string {
	t.Helper()
	code, out, errS := run(t, argv...)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	return out
}

func parse(t *testing.T, out string) []kmergraph.Block {
	t.Helper()
	blocks, err := kmergraph.ParseChrysalis(strings.NewReader(out))
	if err != nil {
		t.Fatalf("parse chrysalis: %v\n%s", err, out)
	}
	return blocks
}

func TestEndToEnd_PalindromicRepeat(t *testing.T) {
	fa := write(t, "itest.fa", ">seq_1\nACGTACGT\n")
	blocks := parse(t, mustRun(t, "--fasta", fa, "-K", "4", "-C", "1"))
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Component != 1 || b.K != 4 || b.StrandSpecific {
		t.Fatalf("header = %+v", b)
	}
	g := b.Graph
	for kmer, want := range map[string]int{"ACGT": 4, "CGTA": 2, "GTAC": 2, "TACG": 2} {
		if got := g.Count(kmer); got != want {
			t.Errorf("count(%s) = %d, want %d", kmer, got, want)
		}
	}
	if g.NumNodes() != 4 || g.EdgeCount("TACG", "ACGT") != 2 {
		t.Errorf("unexpected graph:\n%s", g.String())
	}
}

func TestEndToEnd_StrandSpecificScenarios(t *testing.T) {
	fa := write(t, "ss1.fa", ">s_1\nACGTACGT\n")
	g := parse(t, mustRun(t, "--fasta", fa, "-K", "4", "-C", "1", "--SS"))[0].Graph
	if g.Count("ACGT") != 2 || g.Count("CGTA") != 1 || g.Count("GTAC") != 1 || g.Count("TACG") != 1 {
		t.Fatalf("node counts wrong:\n%s", g.String())
	}
	for _, e := range [][2]string{{"ACGT", "CGTA"}, {"CGTA", "GTAC"}, {"GTAC", "TACG"}, {"TACG", "ACGT"}} {
		if c := g.EdgeCount(e[0], e[1]); c != 1 {
			t.Errorf("edge %s->%s = %d, want 1", e[0], e[1], c)
		}
	}

	fa2 := write(t, "ss2.fa", ">s_2\nAAAAXTTTT\n")
	g2 := parse(t, mustRun(t, "--fasta", fa2, "-K", "2", "-C", "2", "--SS"))[0].Graph
	if g2.NumNodes() != 2 || g2.Count("AA") != 3 || g2.Count("TT") != 3 {
		t.Fatalf("node counts wrong:\n%s", g2.String())
	}
	if g2.NumEdges() != 2 || g2.EdgeCount("AA", "AA") != 2 || g2.EdgeCount("TT", "TT") != 2 {
		t.Fatalf("edges wrong:\n%s", g2.String())
	}
}

func TestEndToEnd_BundleDelimiter(t *testing.T) {
	fa := write(t, "bundle.fa", ">b_2\nAAAAXTTTT\n")
	g := parse(t, mustRun(t, "--fasta", fa, "-K", "3", "-C", "2"))[0].Graph
	if g.NumNodes() != 2 || g.Count("AAA") != 4 || g.Count("TTT") != 4 {
		t.Fatalf("unexpected graph:\n%s", g.String())
	}
	if g.EdgeCount("AAA", "AAA") != 2 || g.EdgeCount("TTT", "TTT") != 2 {
		t.Fatalf("self loops wrong:\n%s", g.String())
	}
}

func TestEndToEnd_StrandSpecific(t *testing.T) {
	fa := write(t, "ss.fa", ">s_1\nAAAC\n")
	g := parse(t, mustRun(t, "--fasta", fa, "-K", "3", "-C", "1", "--SS"))[0].Graph
	if g.Count("GTT") != 0 || g.Count("AAA") != 1 || g.Count("AAC") != 1 {
		t.Fatalf("strand-specific graph has reverse complements:\n%s", g.String())
	}
}

func TestMergedAcrossFilesAndRecords(t *testing.T) {
	a := write(t, "a.fa", ">a_1\nACGTA\n>a_2\nCCCC\n")
	b := write(t, "b.fa", ">b_1\nACGTA\n")
	g := parse(t, mustRun(t, "--fasta", a+","+b, "-K", "4", "-C", "5", "--SS"))[0].Graph
	if g.Count("ACGT") != 2 || g.Count("CGTA") != 2 || g.Count("CCCC") != 1 {
		t.Fatalf("merged counts wrong:\n%s", g.String())
	}
}

func splitBlocks(out string) []string {
	var blocks []string
	for _, b := range strings.SplitAfter(out, "//\n") {
		if b != "" {
			blocks = append(blocks, b)
		}
	}
	sort.Strings(blocks)
	return blocks
}

func TestParallelMatchesSerial(t *testing.T) {
	var sb strings.Builder
	seqs := []string{"ACGTTGCA", "GGGATTACA", "TTTTCCCCAAAAGGGG", "ACGTXACGT", "CATCATCAT"}
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&sb, ">rec_%d\n%s\n", i, seqs[i%len(seqs)])
	}
	fa := write(t, "par.fa", sb.String())

	serial := splitBlocks(mustRun(t, "--graph-per-record", "-K", "3", "-t", "1", fa))
	parallel := splitBlocks(mustRun(t, "--graph-per-record", "-K", "3", "-t", "4", fa))
	if len(serial) != 40 {
		t.Fatalf("serial blocks = %d, want 40", len(serial))
	}
	if strings.Join(serial, "") != strings.Join(parallel, "") {
		t.Fatalf("parallel output differs from serial")
	}
}

func TestPerRecordSkipsMalformedAccession(t *testing.T) {
	fa := write(t, "mixed.fa", ">noid\nACGTA\n>ok_5\nACGTA\n>bad_x\nACGTA\n")
	code, out, errS := run(t, "--graph-per-record", "-K", "4", "--fasta", fa)
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	blocks := parse(t, out)
	if len(blocks) != 1 || blocks[0].Component != 5 {
		t.Fatalf("want one block for component 5, got %+v", blocks)
	}
	if !strings.Contains(errS, "skipping record") || !strings.Contains(errS, "noid") {
		t.Errorf("expected a skip warning, stderr=%s", errS)
	}
}

func TestMergedWithoutComponentIsUsageError(t *testing.T) {
	fa := write(t, "m.fa", ">m_1\nACGT\n")
	code, out, errS := run(t, "--fasta", fa, "-K", "3")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
	if !strings.Contains(errS, "--component") {
		t.Errorf("stderr should name the missing flag: %s", errS)
	}
}

func TestMissingKIsUsageError(t *testing.T) {
	fa := write(t, "m.fa", ">m_1\nACGT\n")
	if code, out, _ := run(t, "--fasta", fa, "-C", "1"); code != 2 || out != "" {
		t.Fatalf("exit %d stdout %q", code, out)
	}
}

func TestMissingFileIsIOError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.fa")
	code, out, _ := run(t, "--fasta", missing, "-K", "3", "-C", "1")
	if code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
	if out != "" {
		t.Errorf("stdout should be empty, got %q", out)
	}
}

func TestEmptyGraphWarns(t *testing.T) {
	fa := write(t, "short.fa", ">s_1\nACG\n")
	code, out, errS := run(t, "--fasta", fa, "-K", "10", "-C", "1")
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errS)
	}
	if !strings.HasPrefix(out, "Component\t1\tk=10\tstrand_specific=0\tnodes=0\tedges=0\n") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(errS, "graph is empty") {
		t.Errorf("expected empty-graph warning, stderr=%s", errS)
	}
}

func TestToStringOutput(t *testing.T) {
	fa := write(t, "t.fa", ">t_1\nACGTA\n")
	out := mustRun(t, "--fasta", fa, "-K", "4", "-C", "1", "--SS", "--toString")
	want := "DeBruijnGraph k=4 nodes=2 edges=1\nACGT\t1\tCGTA:1\nCGTA\t1\n\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestDOTOutput(t *testing.T) {
	fa := write(t, "d.fa", ">d_1\nACGTA\n")
	out := mustRun(t, "--fasta", fa, "-K", "4", "-C", "1", "-o", "dot")
	if !strings.Contains(out, "digraph") || !strings.Contains(out, "->") {
		t.Fatalf("not a DOT graph:\n%s", out)
	}
}

func TestJSONLOutput(t *testing.T) {
	fa := write(t, "j.fa", ">x_3\nACGTA\n>y_4\nCCCCC\n")
	out := mustRun(t, "--graph-per-record", "-K", "4", "--SS", "-t", "1", "-o", "jsonl", fa)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d:\n%s", len(lines), out)
	}
	var g api.GraphV1
	if err := json.Unmarshal([]byte(lines[0]), &g); err != nil {
		t.Fatalf("json: %v", err)
	}
	if g.Component != 3 || g.K != 4 || !g.StrandSpecific || len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("unexpected graph %+v", g)
	}
}

func TestConfigFileAndEnvPrecedence(t *testing.T) {
	fa := write(t, "c.fa", ">c_1\nACGTA\n")
	cfg := write(t, "cfg.toml", "kmer-length = 4\ncomponent = 3\nstrand-specific = true\n")

	b := parse(t, mustRun(t, "--config", cfg, "--fasta", fa))[0]
	if b.Component != 3 || b.K != 4 || !b.StrandSpecific {
		t.Fatalf("config not applied: %+v", b)
	}

	t.Setenv("FA2DBG_COMPONENT", "9")
	if got := parse(t, mustRun(t, "--config", cfg, "--fasta", fa))[0].Component; got != 9 {
		t.Fatalf("env should override config: component %d", got)
	}
	if got := parse(t, mustRun(t, "--config", cfg, "--fasta", fa, "-C", "2"))[0].Component; got != 2 {
		t.Fatalf("flag should override env: component %d", got)
	}
}

func TestDotenvFile(t *testing.T) {
	fa := write(t, "e.fa", ">e_1\nACGTA\n")
	env := write(t, "run.env", "FA2DBG_KMER_LENGTH=4\nFA2DBG_COMPONENT=6\n")
	t.Cleanup(func() {
		os.Unsetenv("FA2DBG_KMER_LENGTH")
		os.Unsetenv("FA2DBG_COMPONENT")
	})
	b := parse(t, mustRun(t, "--env", env, "--fasta", fa))[0]
	if b.K != 4 || b.Component != 6 {
		t.Fatalf("dotenv not applied: %+v", b)
	}
}

func TestSummaryFile(t *testing.T) {
	fa := write(t, "s.fa", ">s_1\nACGTA\n>s_2\nACGTA\n")
	sum := filepath.Join(t.TempDir(), "run.toml")
	mustRun(t, "--graph-per-record", "-K", "4", "--SS", "--summary", sum, fa)
	s, err := report.Read(sum)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if s.Mode != "per-record" || s.Records != 2 || s.Graphs != 2 || s.KmerLength != 4 || !s.StrandSpecific {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestCanceledRunExits130(t *testing.T) {
	fa := write(t, "cancel.fa", ">c_1\nACGTACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errBuf bytes.Buffer
	if code := app.RunContext(ctx, []string{"--fasta", fa, "-K", "4", "-C", "1"}, &out, &errBuf); code != 130 {
		t.Fatalf("exit %d, want 130 (stderr=%s)", code, errBuf.String())
	}
}

func TestHelpAndVersion(t *testing.T) {
	code, out, _ := run(t, "-h")
	if code != 0 || !strings.Contains(out, "--kmer-length") {
		t.Fatalf("help: exit %d\n%s", code, out)
	}
	code, out, _ = run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "fasta2debruijn version ") {
		t.Fatalf("version: exit %d %q", code, out)
	}
	code, out, _ = run(t, "--examples")
	if code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("examples: exit %d %q", code, out)
	}
}
