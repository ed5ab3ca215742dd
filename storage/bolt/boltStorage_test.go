package bolt

import (
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sp0x/scenetime/indexer/search"
)

func newRelease(id int, seeders int) *search.Release {
	return &search.Release{
		LocalID: fmt.Sprint(id),
		Title:   fmt.Sprintf("Release.%d", id),
		Link:    fmt.Sprintf("https://www.scenetime.com/download.php/%d/Release.%d.torrent", id, id),
		Size:    1024,
		Seeders: seeders,
	}
}

var _ = Describe("Bolt storage", func() {
	It("Should be able to open a db", func() {
		db, err := GetBoltDb(tempfile())
		Expect(err).To(BeNil())
		Expect(db).ToNot(BeNil())
		_ = db.Close()
	})

	Context("with a database", func() {
		var bstore *BoltStorage
		var dbPath string
		BeforeEach(func() {
			dbPath = tempfile()
			var err error
			bstore, err = NewBoltStorage(dbPath)
			if err != nil {
				Fail(fmt.Sprintf("Couldn't open a db: %v", err))
			}
		})
		AfterEach(func() {
			if bstore != nil {
				_ = bstore.Close()
				_ = os.Remove(dbPath)
			}
		})

		It("Should store new releases", func() {
			isNew, err := bstore.Add(newRelease(1, 10))
			Expect(err).To(BeNil())
			Expect(isNew).To(BeTrue())
			Expect(bstore.Size()).To(Equal(int64(1)))

			record, err := bstore.Find(newRelease(1, 10).Link)
			Expect(err).To(BeNil())
			Expect(record).ToNot(BeNil())
			Expect(record.Title).To(Equal("Release.1"))
			Expect(record.UUID).ToNot(BeEmpty())
			Expect(record.ID).To(Equal(uint32(1)))
		})

		It("Should update releases with the same link", func() {
			created := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
			bstore.now = func() time.Time { return created }
			_, _ = bstore.Add(newRelease(1, 10))
			first, _ := bstore.Find(newRelease(1, 10).Link)

			bstore.now = func() time.Time { return created.Add(time.Hour) }
			isNew, err := bstore.Add(newRelease(1, 25))
			Expect(err).To(BeNil())
			Expect(isNew).To(BeFalse())
			Expect(bstore.Size()).To(Equal(int64(1)))

			updated, _ := bstore.Find(newRelease(1, 10).Link)
			Expect(updated.Seeders).To(Equal(25))
			Expect(updated.UUID).To(Equal(first.UUID))
			Expect(updated.ID).To(Equal(first.ID))
			Expect(updated.CreatedAt.Equal(created)).To(BeTrue())
			Expect(updated.UpdatedAt.Equal(created.Add(time.Hour))).To(BeTrue())
		})

		It("Should return nil for unknown links", func() {
			record, err := bstore.Find("nope")
			Expect(err).To(BeNil())
			Expect(record).To(BeNil())
		})

		It("Should reject releases without links", func() {
			_, err := bstore.Add(&search.Release{Title: "x"})
			Expect(err).ToNot(BeNil())
		})

		It("Should return the latest releases first", func() {
			for i := 1; i <= 5; i++ {
				_, _ = bstore.Add(newRelease(i, i))
			}
			latest := bstore.GetLatest(3)
			Expect(latest).To(HaveLen(3))
			Expect(latest[0].Title).To(Equal("Release.5"))
			Expect(latest[2].Title).To(Equal("Release.3"))
			Expect(bstore.GetLatest(50)).To(HaveLen(5))
		})

		It("Should be able to truncate", func() {
			_, _ = bstore.Add(newRelease(1, 1))
			Expect(bstore.StoreChat(&Chat{Username: "tester", ChatID: 12})).To(BeNil())
			Expect(bstore.Truncate()).To(BeNil())
			Expect(bstore.Size()).To(Equal(int64(0)))
			isNew, err := bstore.Add(newRelease(1, 1))
			Expect(err).To(BeNil())
			Expect(isNew).To(BeTrue())
		})

		It("Should be able to store chats", func() {
			Expect(bstore.StoreChat(&Chat{Username: "tester", ChatID: 12})).To(BeNil())
			Expect(bstore.StoreChat(&Chat{Username: "other", ChatID: 13})).To(BeNil())

			chat, err := bstore.GetChat(12)
			Expect(err).To(BeNil())
			Expect(chat.Username).To(Equal("tester"))

			var ids []int64
			Expect(bstore.ForChat(func(c *Chat) { ids = append(ids, c.ChatID) })).To(BeNil())
			Expect(ids).To(Equal([]int64{12, 13}))

			Expect(bstore.RemoveChat(12)).To(BeNil())
			chat, _ = bstore.GetChat(12)
			Expect(chat).To(BeNil())
		})
	})
})
