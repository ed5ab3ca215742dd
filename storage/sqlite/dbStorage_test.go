package sqlite

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	"github.com/sp0x/scenetime/indexer/search"
)

// tempfile returns a temporary file path.
func tempfile() string {
	f, err := ioutil.TempFile("", "sqlite-")
	if err != nil {
		panic(err)
	}
	if err := f.Close(); err != nil {
		panic(err)
	}
	if err := os.Remove(f.Name()); err != nil {
		panic(err)
	}
	return f.Name()
}

func newStorage(t *testing.T) *DBStorage {
	storage, err := NewDBStorage(tempfile())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = storage.Close()
		_ = os.Remove(storage.Path)
	})
	return storage
}

func newRelease(id int) *search.Release {
	return &search.Release{
		LocalID: fmt.Sprint(id),
		Title:   fmt.Sprintf("Release.%d", id),
		Link:    fmt.Sprintf("https://www.scenetime.com/download.php/%d/Release.%d.torrent", id, id),
		Size:    -1,
		Seeders: id,
	}
}

func TestDBStorage_Add(t *testing.T) {
	g := NewWithT(t)
	storage := newStorage(t)

	isNew, err := storage.Add(newRelease(1))
	require.NoError(t, err)
	g.Expect(isNew).To(BeTrue())

	updated := newRelease(1)
	updated.Seeders = 99
	isNew, err = storage.Add(updated)
	require.NoError(t, err)
	g.Expect(isNew).To(BeFalse())
	g.Expect(storage.Size()).To(Equal(int64(1)))

	record, err := storage.Find(updated.Link)
	require.NoError(t, err)
	g.Expect(record.Seeders).To(Equal(99))
	g.Expect(record.Size).To(Equal(int64(-1)))
	g.Expect(record.UUID).ToNot(BeEmpty())
}

func TestDBStorage_Add_ShouldRequireALink(t *testing.T) {
	storage := newStorage(t)
	_, err := storage.Add(&search.Release{Title: "a"})
	require.Error(t, err)
}

func TestDBStorage_Find_ShouldReturnNilForUnknownLinks(t *testing.T) {
	g := NewWithT(t)
	storage := newStorage(t)

	record, err := storage.Find("missing")
	require.NoError(t, err)
	g.Expect(record).To(BeNil())
}

func TestDBStorage_GetLatest(t *testing.T) {
	g := NewWithT(t)
	storage := newStorage(t)
	for i := 1; i <= 4; i++ {
		_, err := storage.Add(newRelease(i))
		require.NoError(t, err)
	}

	latest := storage.GetLatest(2)

	g.Expect(latest).To(HaveLen(2))
	g.Expect(latest[0].Title).To(Equal("Release.4"))
	g.Expect(latest[1].Title).To(Equal("Release.3"))
}

func TestDBStorage_Truncate(t *testing.T) {
	g := NewWithT(t)
	storage := newStorage(t)
	_, _ = storage.Add(newRelease(1))

	require.NoError(t, storage.Truncate())
	g.Expect(storage.Size()).To(Equal(int64(0)))
}
