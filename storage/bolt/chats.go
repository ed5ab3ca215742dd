package bolt

import (
	"encoding/json"

	"github.com/boltdb/bolt"
)

// Chat is a telegram chat that asked to be notified of new releases.
type Chat struct {
	Username    string
	InitialText string
	ChatID      int64
}

// StoreChat stores a chat, the chat id is used as the key.
func (b *BoltStorage) StoreChat(chat *Chat) error {
	return b.Database.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(chatsBucket))
		val, err := json.Marshal(chat)
		if err != nil {
			return err
		}
		return bucket.Put(i64tob(chat.ChatID), val)
	})
}

// RemoveChat stops notifications for a chat.
func (b *BoltStorage) RemoveChat(id int64) error {
	return b.Database.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(chatsBucket)).Delete(i64tob(id))
	})
}

// ForChat calls the callback for each stored chat.
func (b *BoltStorage) ForChat(callback func(chat *Chat)) error {
	return b.Database.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(chatsBucket)).ForEach(func(k, v []byte) error {
			var chat = Chat{}
			if err := json.Unmarshal(v, &chat); err != nil {
				return err
			}
			callback(&chat)
			return nil
		})
	})
}

func (b *BoltStorage) GetChat(id int64) (*Chat, error) {
	var chat *Chat
	err := b.Database.View(func(tx *bolt.Tx) error {
		buff := tx.Bucket([]byte(chatsBucket)).Get(i64tob(id))
		if buff == nil {
			return nil
		}
		chat = &Chat{}
		return json.Unmarshal(buff, chat)
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}
