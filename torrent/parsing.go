package torrent

import (
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"net/url"
	"strings"

	"github.com/jackpal/bencode-go"
)

var (
	ErrNotATorrent = errors.New("the content isn't a torrent file")
	ErrNoInfo      = errors.New("the torrent has no info dictionary")
)

// Definition is the part of a torrent's metainfo we care about.
type Definition struct {
	Announce     string
	AnnounceList []string
	Comment      string
	Name         string
	PieceLength  int64
	Files        []File
	InfoHash     string
}

type File struct {
	Path   string
	Length int64
}

// ParseFromReader reads the whole stream and parses it as a torrent file.
func ParseFromReader(stream io.Reader) (*Definition, error) {
	body, err := ioutil.ReadAll(stream)
	if err != nil {
		return nil, err
	}
	return Parse(body)
}

// Parse decodes a torrent file. The info hash is computed over the
// re-encoded info dictionary, so unknown keys are kept in it.
func Parse(data []byte) (*Definition, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != 'd' {
		// Sites answer with a html page when the session has expired.
		return nil, ErrNotATorrent
	}
	raw, err := bencode.Decode(bytes.NewReader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotATorrent, err)
	}
	root, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ErrNotATorrent
	}
	info, ok := root["info"].(map[string]interface{})
	if !ok {
		return nil, ErrNoInfo
	}
	buff := &bytes.Buffer{}
	if err := bencode.Marshal(buff, info); err != nil {
		return nil, err
	}
	def := &Definition{
		Announce:    stringValue(root["announce"]),
		Comment:     stringValue(root["comment"]),
		Name:        stringValue(info["name"]),
		PieceLength: intValue(info["piece length"]),
		InfoHash:    fmt.Sprintf("%x", sha1.Sum(buff.Bytes())),
	}
	if tiers, ok := root["announce-list"].([]interface{}); ok {
		for _, tier := range tiers {
			trackers, _ := tier.([]interface{})
			for _, tracker := range trackers {
				if s := stringValue(tracker); s != "" {
					def.AnnounceList = append(def.AnnounceList, s)
				}
			}
		}
	}
	if files, ok := info["files"].([]interface{}); ok {
		for _, f := range files {
			entry, _ := f.(map[string]interface{})
			var parts []string
			pathParts, _ := entry["path"].([]interface{})
			for _, p := range pathParts {
				parts = append(parts, stringValue(p))
			}
			def.Files = append(def.Files, File{
				Path:   strings.Join(parts, "/"),
				Length: intValue(entry["length"]),
			})
		}
	} else {
		def.Files = []File{{Path: def.Name, Length: intValue(info["length"])}}
	}
	return def, nil
}

// Size is the total length of all the files in the torrent.
func (d *Definition) Size() int64 {
	var total int64
	for _, f := range d.Files {
		total += f.Length
	}
	return total
}

func (d *Definition) MagnetURL() string {
	values := url.Values{}
	values.Set("dn", d.Name)
	for _, tracker := range d.trackers() {
		values.Add("tr", tracker)
	}
	return fmt.Sprintf("magnet:?xt=urn:btih:%s&%s", d.InfoHash, values.Encode())
}

func (d *Definition) trackers() []string {
	if len(d.AnnounceList) > 0 {
		return d.AnnounceList
	}
	if d.Announce != "" {
		return []string{d.Announce}
	}
	return nil
}

func stringValue(v interface{}) string {
	s, _ := v.(string)
	return s
}

func intValue(v interface{}) int64 {
	i, _ := v.(int64)
	return i
}
