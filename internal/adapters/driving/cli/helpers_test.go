package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/coursesched/internal/bootstrap"
	"github.com/custodia-labs/coursesched/internal/core/domain"
)

// resetFlags clears flag values left over from earlier Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// run executes the root command with args and returns its output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// useBootstrap wires the real services for the duration of the test.
func useBootstrap(t *testing.T) {
	t.Helper()
	previous := serviceFactory
	SetServiceFactory(func(cfg domain.Config) (*Services, error) {
		svc, err := bootstrap.Build(cfg)
		if err != nil {
			return nil, err
		}
		return &Services{Report: svc.Report, Metrics: svc.Metrics}, nil
	})
	t.Cleanup(func() { serviceFactory = previous })
}

var portalHeader = []string{
	"ردیف", "كد درس", "نام درس", "زمانبندي تشکيل کلاس", "استاد", "تعداد واحد نظري",
	"تعداد واحد عملي", "نام كلاس درس", "مقطع ارائه درس", "كد ارائه کلاس درس",
	"زمان امتحان", "مكان برگزاري",
}

// writePage writes a saved portal page holding rows and returns its path.
func writePage(t *testing.T, dir, name string, header []string, rows ...[]string) string {
	t.Helper()
	var b strings.Builder
	b.WriteString(`<html><body><table id="scrollable"><tr><th>`)
	b.WriteString(strings.Join(header, "</th><th>"))
	b.WriteString("</th></tr>")
	for _, row := range rows {
		b.WriteString("<tr><td>")
		b.WriteString(strings.Join(row, "</td><td>"))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</table></body></html>")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))
	return path
}

func portalRow(code, name, dayTime string) []string {
	return []string{"1", code, name, dayTime, "دکتر رضایی", "3", "0", "کلاس ۲", "کارشناسی", "C" + code, "1403/10/20", "ساختمان A"}
}
