package document

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelworks/hotel-ops-backend/internal/employee"
)

type fakeRepo struct {
	docs map[string]*Document
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{docs: map[string]*Document{}}
}

func (r *fakeRepo) Create(_ context.Context, d *Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (r *fakeRepo) ListByEmployee(_ context.Context, employeeID string) ([]*Document, error) {
	var out []*Document
	for _, d := range r.docs {
		if d.EmployeeID == employeeID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

type fakeEmployeeService struct{}

func (fakeEmployeeService) Create(context.Context, employee.CreateRequest) (*employee.Employee, error) {
	panic("not used")
}

func (fakeEmployeeService) Authenticate(context.Context, string, string) (*employee.Employee, error) {
	panic("not used")
}

func (fakeEmployeeService) GetByID(_ context.Context, id string) (*employee.Employee, error) {
	if id == "emp-404" {
		return nil, employee.ErrNotFound
	}
	return &employee.Employee{ID: id}, nil
}

func (fakeEmployeeService) List(context.Context, employee.Filter) ([]*employee.Employee, int, error) {
	panic("not used")
}

func (fakeEmployeeService) Update(context.Context, string, employee.UpdateRequest) (*employee.Employee, error) {
	panic("not used")
}

func (fakeEmployeeService) Delete(context.Context, string) error {
	panic("not used")
}

// memStorage keeps saved blobs in a map.
type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: map[string][]byte{}}
}

func (s *memStorage) Save(_ context.Context, path string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.files[path] = data
	return nil
}

func (s *memStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	delete(s.files, path)
	return nil
}

func makeFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(int64(buf.Len()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func newFixture() (Service, *fakeRepo, *memStorage) {
	repo := newFakeRepo()
	store := newMemStorage()
	return NewService(repo, fakeEmployeeService{}, store), repo, store
}

func TestUploadDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("stores file and metadata", func(t *testing.T) {
		svc, repo, store := newFixture()

		header := makeFileHeader(t, "contract.pdf", "application/pdf", "pdf bytes")
		d, err := svc.Upload(ctx, header, "emp-1")
		require.NoError(t, err)

		assert.Equal(t, "emp-1", d.EmployeeID)
		assert.Equal(t, "contract.pdf", d.Filename)
		assert.Equal(t, "application/pdf", d.ContentType)
		assert.Nil(t, d.ThumbnailPath, "non-image upload gets no thumbnail")
		assert.Contains(t, repo.docs, d.ID)
		assert.Contains(t, store.files, d.StoragePath)
	})

	t.Run("rejects unknown employee", func(t *testing.T) {
		svc, _, _ := newFixture()

		header := makeFileHeader(t, "contract.pdf", "application/pdf", "pdf bytes")
		_, err := svc.Upload(ctx, header, "emp-404")
		assert.ErrorIs(t, err, employee.ErrNotFound)
	})

	t.Run("broken image still uploads without thumbnail", func(t *testing.T) {
		svc, _, _ := newFixture()

		header := makeFileHeader(t, "scan.png", "image/png", "not really a png")
		d, err := svc.Upload(ctx, header, "emp-1")
		require.NoError(t, err)
		assert.Nil(t, d.ThumbnailPath)
	})
}

func TestDownloadDocument(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture()

	header := makeFileHeader(t, "contract.pdf", "application/pdf", "pdf bytes")
	d, err := svc.Upload(ctx, header, "emp-1")
	require.NoError(t, err)

	stream, got, err := svc.Download(ctx, d.ID)
	require.NoError(t, err)
	defer stream.Close()

	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
	assert.Equal(t, d.ID, got.ID)

	_, _, err = svc.DownloadThumbnail(ctx, d.ID)
	assert.ErrorIs(t, err, ErrNoThumbnail)
}

func TestDeleteDocument(t *testing.T) {
	ctx := context.Background()
	svc, repo, store := newFixture()

	header := makeFileHeader(t, "contract.pdf", "application/pdf", "pdf bytes")
	d, err := svc.Upload(ctx, header, "emp-1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, d.ID))
	assert.NotContains(t, repo.docs, d.ID)
	assert.NotContains(t, store.files, d.StoragePath)

	assert.ErrorIs(t, svc.Delete(ctx, d.ID), ErrNotFound)
}

func TestListByEmployee(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newFixture()

	for _, emp := range []string{"emp-1", "emp-1", "emp-2"} {
		header := makeFileHeader(t, "doc.pdf", "application/pdf", "bytes")
		_, err := svc.Upload(ctx, header, emp)
		require.NoError(t, err)
	}

	docs, err := svc.ListByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	if !strings.HasPrefix(docs[0].StoragePath, "documents/") {
		t.Fatalf("unexpected storage path %q", docs[0].StoragePath)
	}
}
