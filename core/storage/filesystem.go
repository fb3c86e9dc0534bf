package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

var (
	errIsDirectory  = errors.New("is a directory")
	errNotDirectory = errors.New("not a directory")
	errNotSeekable  = errors.New("object stream is not seekable")
)

// FileSystem exposes the objects under a bucket prefix as a read-only
// http.FileSystem. Key prefixes ending in "/" are directories.
type FileSystem struct {
	client  Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewFileSystem creates a FileSystem rooted at prefix inside bucket.
// timeout bounds each metadata call; object bodies stream without a deadline.
func NewFileSystem(client Client, bucket, prefix string, timeout time.Duration) *FileSystem {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &FileSystem{client: client, bucket: bucket, prefix: prefix, timeout: timeout}
}

// String describes the served root, e.g. "s3://site/public/".
func (fsys *FileSystem) String() string {
	return "s3://" + fsys.bucket + "/" + fsys.prefix
}

// key maps an URL path to an object key. Cleaning against "/" keeps the result
// inside the prefix.
func (fsys *FileSystem) key(name string) string {
	clean := strings.TrimPrefix(path.Clean("/"+name), "/")
	return fsys.prefix + clean
}

// Open implements http.FileSystem.
func (fsys *FileSystem) Open(name string) (http.File, error) {
	key := fsys.key(name)
	if key == fsys.prefix {
		return fsys.openDir(name, key), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), fsys.timeout)
	defer cancel()

	info, err := fsys.client.StatObject(ctx, fsys.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		// The body is read after Open returns, so it must not share ctx.
		body, err := fsys.client.GetObject(context.Background(), fsys.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return &objectFile{ReadCloser: body, info: fileInfo{
			name:    path.Base(key),
			size:    info.Size,
			modTime: info.LastModified,
		}}, nil
	}
	if !isNotFound(err) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	// No object: it is a directory if anything lives below it.
	isDir, err := fsys.hasChildren(ctx, key+"/")
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	if !isDir {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return fsys.openDir(name, key+"/"), nil
}

func (fsys *FileSystem) openDir(name, dirKey string) *dirFile {
	base := path.Base(strings.TrimSuffix(dirKey, "/"))
	if dirKey == fsys.prefix {
		base = "/"
	}
	return &dirFile{fsys: fsys, name: name, dirKey: dirKey, info: fileInfo{name: base, dir: true}}
}

func (fsys *FileSystem) hasChildren(ctx context.Context, dirKey string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel() // stops the listing goroutine

	for obj := range fsys.client.ListObjects(ctx, fsys.bucket, minio.ListObjectsOptions{Prefix: dirKey, MaxKeys: 1}) {
		if obj.Err != nil {
			return false, obj.Err
		}
		return true, nil
	}
	return false, nil
}

// list returns the immediate children of dirKey.
func (fsys *FileSystem) list(dirKey string) ([]fs.FileInfo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fsys.timeout)
	defer cancel()

	var entries []fs.FileInfo
	for obj := range fsys.client.ListObjects(ctx, fsys.bucket, minio.ListObjectsOptions{Prefix: dirKey}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", dirKey, obj.Err)
		}
		name := strings.TrimPrefix(obj.Key, dirKey)
		if name == "" {
			// Folder marker object
			continue
		}
		if strings.HasSuffix(name, "/") {
			entries = append(entries, fileInfo{name: strings.TrimSuffix(name, "/"), dir: true})
			continue
		}
		entries = append(entries, fileInfo{name: name, size: obj.Size, modTime: obj.LastModified})
	}
	return entries, nil
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey"
}

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return fi.dir }
func (fi fileInfo) Sys() any           { return nil }

func (fi fileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

type objectFile struct {
	io.ReadCloser
	info fileInfo
}

func (f *objectFile) Seek(offset int64, whence int) (int64, error) {
	if s, ok := f.ReadCloser.(io.Seeker); ok {
		return s.Seek(offset, whence)
	}
	return 0, errNotSeekable
}

func (f *objectFile) Readdir(int) ([]fs.FileInfo, error) {
	return nil, &fs.PathError{Op: "readdir", Path: f.info.name, Err: errNotDirectory}
}

func (f *objectFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

type dirFile struct {
	fsys    *FileSystem
	name    string
	dirKey  string
	info    fileInfo
	entries []fs.FileInfo
	listed  bool
	offset  int
}

func (d *dirFile) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: errIsDirectory}
}

func (d *dirFile) Seek(offset int64, whence int) (int64, error) {
	if offset == 0 && whence == io.SeekStart {
		d.offset = 0
		return 0, nil
	}
	return 0, &fs.PathError{Op: "seek", Path: d.name, Err: errIsDirectory}
}

func (d *dirFile) Close() error { return nil }

func (d *dirFile) Stat() (fs.FileInfo, error) { return d.info, nil }

// Readdir follows os.File.Readdir: count <= 0 returns everything left,
// otherwise at most count entries and io.EOF once exhausted.
func (d *dirFile) Readdir(count int) ([]fs.FileInfo, error) {
	if !d.listed {
		entries, err := d.fsys.list(d.dirKey)
		if err != nil {
			return nil, err
		}
		d.entries = entries
		d.listed = true
	}

	rest := d.entries[d.offset:]
	if count <= 0 {
		d.offset = len(d.entries)
		return rest, nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if count > len(rest) {
		count = len(rest)
	}
	d.offset += count
	return rest[:count], nil
}
