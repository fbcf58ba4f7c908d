package memories

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/RacoonMediaServer/rms-memories/internal/config"
	"github.com/RacoonMediaServer/rms-memories/internal/metadata"
	"github.com/RacoonMediaServer/rms-memories/internal/model"
	"github.com/RacoonMediaServer/rms-memories/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	results map[string]metadata.Result
	calls   []string
}

func (r *fakeReader) Read(path string) metadata.Result {
	name := filepath.Base(path)
	r.calls = append(r.calls, name)
	return r.results[name]
}

type testEnv struct {
	root   string
	out    config.Output
	reader *fakeReader
	svc    *Service
}

var generatedAt = time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

func newTestEnv(t *testing.T, files ...string) *testEnv {
	dir := t.TempDir()
	env := &testEnv{
		root:   filepath.Join(dir, "Memories"),
		reader: &fakeReader{results: map[string]metadata.Result{}},
	}

	for _, f := range files {
		path := filepath.Join(env.root, filepath.FromSlash(f))
		if strings.HasSuffix(f, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(f), 0644))
	}

	env.out = config.Default().Output
	env.out.Public = filepath.Join(dir, "public", "memories", "user")
	env.out.Manifest = filepath.Join(dir, "src", "data", "generatedMemories.ts")

	env.svc = NewService(Settings{
		SourceRoot:       env.root,
		Metadata:         env.reader,
		DirectoryManager: storage.NewManager(env.out, config.Retry{Attempts: 3, Delay: 1}),
		Clock:            func() time.Time { return generatedAt },
	})
	return env
}

func (e *testEnv) publicFiles(t *testing.T) []string {
	var files []string
	err := filepath.Walk(e.out.Public, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			rel, _ := filepath.Rel(e.out.Public, path)
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	require.NoError(t, err)
	return files
}

func checkInvariants(t *testing.T, manifest model.Manifest) {
	folderIDs := map[model.ID]bool{}
	itemIDs := map[model.ID]bool{}
	for _, f := range manifest {
		assert.False(t, folderIDs[f.ID], "duplicate folder id %s", f.ID)
		folderIDs[f.ID] = true
		assert.Equal(t, f.ID, f.Slug)
		assert.GreaterOrEqual(t, f.Count, 1)
		assert.Equal(t, len(f.Items), f.Count)
		for _, item := range f.Items {
			assert.False(t, itemIDs[item.ID], "duplicate item id %s", item.ID)
			itemIDs[item.ID] = true
			if item.Context != nil {
				assert.False(t, item.Context.IsEmpty())
			}
		}
	}
}

func TestSyncMissingSource(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.svc.Sync()
	require.NoError(t, err)
	assert.False(t, report.SourceFound)
	assert.Empty(t, report.Manifest)

	assert.DirExists(t, env.out.Public)
	assert.Empty(t, env.publicFiles(t))

	data, err := os.ReadFile(env.out.Manifest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// Generated at: 2025-02-14T09:00:00.000Z\n")
	assert.True(t, strings.HasSuffix(string(data), "export const generatedMemories: MemoryFolder[] = [];\n"))
}

func TestSyncEmptySourceRoot(t *testing.T) {
	env := newTestEnv(t)
	svc := NewService(Settings{
		Metadata:         env.reader,
		DirectoryManager: storage.NewManager(env.out, config.Retry{Attempts: 1}),
		Clock:            func() time.Time { return generatedAt },
	})

	plan, err := svc.Plan()
	require.NoError(t, err)
	assert.False(t, plan.SourceFound)

	report, err := svc.Sync()
	require.NoError(t, err)
	assert.False(t, report.SourceFound)
	assert.Empty(t, report.Manifest)
	assert.DirExists(t, env.out.Public)

	data, err := os.ReadFile(env.out.Manifest)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "export const generatedMemories: MemoryFolder[] = [];\n"))
}

func TestSyncBuildsManifest(t *testing.T) {
	env := newTestEnv(t,
		"Paris/beach.jpg",
		"Paris/beach.png",
		"Paris/IMG_20230714_153045.jpg",
		"Paris/clip.MOV",
		"Paris/.DS_Store",
		"Paris/notes.txt",
		"paris/photo2.jpg",
		"paris/photo10.jpg",
		"Empty/readme.md",
		"Nothing/",
		" Café de Flore /___.webp",
	)
	env.reader.results["beach.jpg"] = metadata.Result{Fields: metadata.Fields{
		"Make":             "Canon",
		"Model":            "Canon EOS R5",
		"DateTimeOriginal": "2023:07:14 10:00:00",
		"latitude":         40.712776001,
		"longitude":        -74.005974001,
		"City":             "New York",
	}}
	env.reader.results["photo2.jpg"] = metadata.Result{Err: errors.New("corrupt")}

	report, err := env.svc.Sync()
	require.NoError(t, err)
	assert.True(t, report.SourceFound)
	checkInvariants(t, report.Manifest)

	require.Len(t, report.Manifest, 3)

	cafe := report.Manifest[0]
	assert.Equal(t, model.ID("cafe-de-flore"), cafe.ID)
	assert.Equal(t, "Café de Flore", cafe.Title)
	require.Len(t, cafe.Items, 1)
	assert.Equal(t, model.ID("cafe-de-flore-memory-1"), cafe.Items[0].ID)
	assert.Equal(t, "Memory 1", cafe.Items[0].Title)
	assert.Equal(t, " Café de Flore  - Memory 1", cafe.Items[0].Alt)
	assert.Equal(t, "/memories/user/cafe-de-flore/memory-1.webp", cafe.Items[0].Src)

	paris := report.Manifest[1]
	assert.Equal(t, model.ID("paris"), paris.ID)
	assert.Equal(t, 4, paris.Count)

	beach := paris.Items[0]
	assert.Equal(t, model.ID("paris-beach"), beach.ID)
	assert.Equal(t, "/memories/user/paris/beach.jpg", beach.Src)
	assert.Equal(t, model.MediaTypeImage, beach.Type)
	require.NotNil(t, beach.Context)
	assert.Equal(t, "Canon EOS R5", beach.Context.Device)
	assert.Equal(t, "2023-07-14T10:00:00.000Z", beach.Context.CapturedAt)
	assert.Equal(t, "New York", beach.Context.Location)
	assert.Equal(t, 40.712776, *beach.Context.Latitude)
	assert.Equal(t, -74.005974, *beach.Context.Longitude)

	beach2 := paris.Items[1]
	assert.Equal(t, model.ID("paris-beach-2"), beach2.ID)
	assert.Equal(t, "/memories/user/paris/beach-2.png", beach2.Src)
	assert.Nil(t, beach2.Context)

	clip := paris.Items[2]
	assert.Equal(t, model.ID("paris-clip"), clip.ID)
	assert.Equal(t, model.MediaTypeVideo, clip.Type)
	assert.Equal(t, "/memories/user/paris/clip.mov", clip.Src)

	dated := paris.Items[3]
	assert.Equal(t, model.ID("paris-img-20230714-153045"), dated.ID)
	assert.Equal(t, "IMG 20230714 153045", dated.Title)
	assert.Equal(t, "Paris - IMG 20230714 153045", dated.Alt)
	require.NotNil(t, dated.Context)
	assert.Equal(t, &model.Context{CapturedAt: "2023-07-14T15:30:45.000Z"}, dated.Context)

	lower := report.Manifest[2]
	assert.Equal(t, model.ID("paris-2"), lower.ID)
	assert.Equal(t, "paris", lower.Title)
	assert.Equal(t, []model.ID{"paris-2-photo2", "paris-2-photo10"}, []model.ID{lower.Items[0].ID, lower.Items[1].ID})

	assert.NotContains(t, env.reader.calls, "clip.MOV")

	assert.ElementsMatch(t, []string{
		"cafe-de-flore/memory-1.webp",
		"paris/beach.jpg",
		"paris/beach-2.png",
		"paris/clip.mov",
		"paris/img-20230714-153045.jpg",
		"paris-2/photo2.jpg",
		"paris-2/photo10.jpg",
	}, env.publicFiles(t))

	data, err := os.ReadFile(filepath.Join(env.out.Public, "paris", "beach-2.png"))
	require.NoError(t, err)
	assert.Equal(t, "Paris/beach.png", string(data))
}

func TestSyncIsIdempotent(t *testing.T) {
	env := newTestEnv(t, "Trip/a.jpg", "Trip/b.jpg")

	first, err := env.svc.Sync()
	require.NoError(t, err)
	firstModule, err := os.ReadFile(env.out.Manifest)
	require.NoError(t, err)

	stale := filepath.Join(env.out.Public, "removed-folder", "old.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(stale), 0755))
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0644))

	second, err := env.svc.Sync()
	require.NoError(t, err)
	secondModule, err := os.ReadFile(env.out.Manifest)
	require.NoError(t, err)

	assert.Equal(t, first.Manifest, second.Manifest)
	assert.Equal(t, string(firstModule), string(secondModule))
	assert.Equal(t, []string{"trip/a.jpg", "trip/b.jpg"}, env.publicFiles(t))
}

func TestPlanDoesNotTouchOutput(t *testing.T) {
	env := newTestEnv(t, "Trip/a.jpg")

	report, err := env.svc.Plan()
	require.NoError(t, err)
	require.Len(t, report.Manifest, 1)
	assert.Equal(t, model.ID("trip-a"), report.Manifest[0].Items[0].ID)

	assert.NoDirExists(t, env.out.Public)
	assert.NoFileExists(t, env.out.Manifest)
}

type brokenDirectory struct {
	DirectoryManager
	err error
}

func (b brokenDirectory) StoreMedia(string, model.ID, string) error {
	return b.err
}

func TestSyncFailsOnCopyError(t *testing.T) {
	env := newTestEnv(t, "Trip/a.jpg")
	copyErr := errors.New("disk full")
	env.svc.dir = brokenDirectory{
		DirectoryManager: storage.NewManager(env.out, config.Retry{Attempts: 1}),
		err:              copyErr,
	}

	_, err := env.svc.Sync()
	assert.ErrorIs(t, err, copyErr)
	assert.NoFileExists(t, env.out.Manifest)
}

func TestItemIDsStayUnique(t *testing.T) {
	env := newTestEnv(t, "a/b-c.jpg", "a b/c.jpg")

	report, err := env.svc.Plan()
	require.NoError(t, err)
	checkInvariants(t, report.Manifest)

	require.Len(t, report.Manifest, 2)
	assert.Equal(t, model.ID("a-b-c"), report.Manifest[0].Items[0].ID)
	assert.Equal(t, model.ID("a-b-c-2"), report.Manifest[1].Items[0].ID)
}
