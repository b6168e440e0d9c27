// Package gitstore provides a Git plumbing-based implementation of KeyValueStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/crypto"
)

// Ensure Store implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*Store)(nil)

// ErrInvalidKey is returned for keys that cannot be used in a ref name.
var ErrInvalidKey = errors.New("invalid key for git ref")

// Store implements domain.KeyValueStore using Git refs and blobs.
//
// Data structure:
//
//	refs/<namespace>/
//	  items/
//	    <key>  → blob (value)
//
// Values never touch the working tree or any branch, so the store can live
// inside an existing project repository. With an encryptor, blobs hold
// AES-GCM sealed values instead of plaintext.
type Store struct {
	repo      *git.Repository
	encryptor *crypto.Encryptor // nil means plaintext blobs
	namespace string            // e.g., "todo"
	mu        sync.RWMutex
}

// Open opens the repository at path, creating a bare repository if none exists.
func Open(path, namespace string) (*Store, error) {
	return OpenWithEncryptor(path, namespace, nil)
}

// OpenWithEncryptor is Open with optional blob encryption.
func OpenWithEncryptor(path, namespace string, encryptor *crypto.Encryptor) (*Store, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = git.PlainInit(path, true)
	}
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return NewWithRepo(repo, namespace, encryptor), nil
}

// NewWithRepo creates a new Store with an existing repository instance.
// A nil encryptor stores plaintext blobs.
func NewWithRepo(repo *git.Repository, namespace string, encryptor *crypto.Encryptor) *Store {
	if namespace == "" {
		namespace = domain.DefaultStoreNamespace
	}
	return &Store{
		repo:      repo,
		encryptor: encryptor,
		namespace: namespace,
	}
}

// refPrefix returns the ref prefix for this namespace.
func (s *Store) refPrefix() string {
	return "refs/" + s.namespace + "/"
}

// itemRef returns the ref name for a key.
func (s *Store) itemRef(key string) (plumbing.ReferenceName, error) {
	if key == "" || strings.ContainsAny(key, " ~^:?*[\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return plumbing.ReferenceName(s.refPrefix() + "items/" + key), nil
}

// GetItem returns the value stored under key.
func (s *Store) GetItem(key string) (string, bool, error) {
	name, err := s.itemRef(key)
	if err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, err := s.repo.Reference(name, true)
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get item ref: %w", err)
	}

	data, err := s.readBlob(ref.Hash())
	if err != nil {
		return "", false, fmt.Errorf("read item: %w", err)
	}
	return string(data), true, nil
}

// SetItem stores value under key as a new blob and points the key's ref at it.
func (s *Store) SetItem(key, value string) error {
	name, err := s.itemRef(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.writeBlob([]byte(value))
	if err != nil {
		return err
	}

	ref := plumbing.NewHashReference(name, hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set item ref: %w", err)
	}
	return nil
}

// RemoveItem deletes the key's ref. The blob is left for git gc.
func (s *Store) RemoveItem(key string) error {
	name, err := s.itemRef(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Storer.RemoveReference(name); err != nil {
		if !errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("remove item ref: %w", err)
		}
	}
	return nil
}

// Close is a no-op; go-git repositories hold no open handles between calls.
func (s *Store) Close() error {
	return nil
}

// writeBlob stores data as a blob, sealing it first when encryption is on.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	if s.encryptor != nil {
		sealed, err := s.encryptor.Encrypt(data)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("encrypt data: %w", err)
		}
		data = sealed
	}

	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}

	return hash, nil
}

func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}

	if s.encryptor != nil {
		plain, err := s.encryptor.Decrypt(data)
		if err != nil {
			return nil, fmt.Errorf("decrypt data: %w", err)
		}
		return plain, nil
	}
	return data, nil
}
