package pathscheme

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"empty", "", Path{}},
		{"bare file path", "/data/pool.bin", Path{Scheme: FileScheme, Path: "/data/pool.bin"}},
		{"relative file path", "pairs.tsv", Path{Scheme: FileScheme, Path: "pairs.tsv"}},
		{"explicit scheme", "s3://bucket/key.tsv", Path{Scheme: "s3", Path: "bucket/key.tsv"}},
		{"minio scheme", "minio://bucket/dir/key", Path{Scheme: "minio", Path: "bucket/dir/key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.in))
		})
	}
}

func TestPath_Inited(t *testing.T) {
	require.False(t, Path{}.Inited())
	require.False(t, Path{Scheme: FileScheme}.Inited())
	require.True(t, Parse("weights.tsv").Inited())
}

func TestPath_String(t *testing.T) {
	require.Equal(t, "", Path{}.String())
	require.Equal(t, "s3://bucket/key", Parse("s3://bucket/key").String())
	require.Equal(t, "file://weights.tsv", Parse("weights.tsv").String())
}

func TestRegistry_UnknownScheme(t *testing.T) {
	r := NewRegistry()

	_, err := r.Lookup("hdfs")
	require.Error(t, err)
	require.Contains(t, err.Error(), "hdfs")

	_, err = r.Exists(context.Background(), Parse("hdfs://cluster/path"))
	require.Error(t, err)
}

func TestRegistry_FileScheme(t *testing.T) {
	ctx := context.Background()
	r := NewRegistry()

	path := filepath.Join(t.TempDir(), "weights.tsv")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o600))

	ok, err := r.Exists(ctx, Parse(path))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Exists(ctx, Parse(path+".absent"))
	require.NoError(t, err)
	require.False(t, ok)

	rc, err := r.Open(ctx, Parse(path))
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n", string(data))
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	r.Register("custom", FSHandler{})

	h, err := r.Lookup("custom")
	require.NoError(t, err)
	require.NotNil(t, h)
}
