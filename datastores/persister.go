package datastores

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/avtools/soundwaves/common/config"
	"github.com/avtools/soundwaves/common/rcontext"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// Persister stores a named byte blob somewhere retrievable and returns a
// reference to it.
type Persister interface {
	Persist(ctx rcontext.RunContext, name string, r io.Reader, size int64, contentType string) (string, error)
}

func Pick(cfg config.UploadConfig) (Persister, error) {
	switch cfg.Type {
	case "s3":
		return newS3Persister(cfg.S3)
	case "file":
		return &filePersister{dir: cfg.Directory}, nil
	default:
		return nil, fmt.Errorf("unknown upload datastore type: %s", cfg.Type)
	}
}

// UploadFile persists a finished artifact from disk, named by its base
// name.
func UploadFile(ctx rcontext.RunContext, p Persister, path string) (string, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	//goland:noinspection GoUnhandledErrorResult
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", err
	}

	name := filepath.Base(path)
	ctx.Log.Infof("Uploading %s (%s, %s)", name, mime.String(), humanize.Bytes(uint64(stat.Size())))
	return p.Persist(ctx, name, f, stat.Size(), mime.String())
}
