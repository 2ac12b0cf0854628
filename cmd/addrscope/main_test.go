package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-colorable"
	"github.com/stretchr/testify/require"

	"github.com/Amr-9/AddrScope/pkg/classifier"
)

func newTestPrinter(t *testing.T, asJSON bool) (*printer, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	c, err := classifier.New(classifier.DefaultTable())
	require.NoError(t, err)

	return &printer{w: colorable.NewNonColorable(&buf), classifier: c, json: asJSON}, &buf
}

func TestPrintLinesJSON(t *testing.T) {
	p, buf := newTestPrinter(t, true)

	input := strings.Join([]string{
		"1J9uwBYepTm5737RtzkSEePTevGgDGLP5S",
		"",
		"  bc1p8denc9m4sqe9hluasrvxkkdqgkydrk5ctxre5nkk4qwdvefn0sdsc6eqxe  ",
		"https://example.com",
	}, "\n")
	require.NoError(t, p.printLines(strings.NewReader(input)))

	dec := json.NewDecoder(buf)
	var got []classifier.Report
	for dec.More() {
		var r classifier.Report
		require.NoError(t, dec.Decode(&r))
		got = append(got, r)
	}

	require.Len(t, got, 3)
	require.Equal(t, []string{"legacy"}, got[0].Names)
	require.Equal(t, []string{"P2TR"}, got[1].TypeNames)
	require.Equal(t, "bc1p8denc9m4sqe9hluasrvxkkdqgkydrk5ctxre5nkk4qwdvefn0sdsc6eqxe", got[1].Address)
	require.False(t, got[2].Known)
}

func TestPrintText(t *testing.T) {
	p, buf := newTestPrinter(t, false)

	require.NoError(t, p.print("bc1qfvmj8jse4r7203mrchfyt24sjcpna3s2y35ylp"))
	require.Contains(t, buf.String(), "segwit-native · segwit-v0")
}

func TestPrompt(t *testing.T) {
	p, buf := newTestPrinter(t, false)

	input := "37u4L57bLqZ8NL9bs1GNX2x52KxviDfvPp\n\nnot-an-address\nq\n"
	require.NoError(t, p.prompt(bufio.NewReader(strings.NewReader(input))))

	out := buf.String()
	require.Contains(t, out, "✓ 37u4L57bLqZ8NL9bs1GNX2x52KxviDfvPp")
	require.Contains(t, out, "✗ not-an-address")
}

func TestPromptEOF(t *testing.T) {
	p, _ := newTestPrinter(t, false)
	require.NoError(t, p.prompt(bufio.NewReader(strings.NewReader(""))))
}

func TestRunArgs(t *testing.T) {
	require.NoError(t, run([]string{"--json", "--nocolor", "--loglevel=error", "1J9uwBYepTm5737RtzkSEePTevGgDGLP5S"}))
	require.Error(t, run([]string{"--shape.p2pkh-len=0", "1J9uwBYepTm5737RtzkSEePTevGgDGLP5S"}))
}
