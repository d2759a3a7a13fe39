// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"io"
	"os"

	"github.com/stretchr/testify/mock"

	"filesort/internal/domain"
)

// MockFileSystemAdapter is a mock implementation of domain.FileSystemAdapter.
type MockFileSystemAdapter struct {
	mock.Mock
}

// NewMockFileSystemAdapter creates a mock and registers expectation checks on cleanup.
func NewMockFileSystemAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileSystemAdapter {
	m := &MockFileSystemAdapter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// ReadFile provides a mock function.
func (m *MockFileSystemAdapter) ReadFile(path string) ([]byte, error) {
	ret := m.Called(path)

	var data []byte
	if v := ret.Get(0); v != nil {
		data = v.([]byte)
	}
	return data, ret.Error(1)
}

// Open provides a mock function.
func (m *MockFileSystemAdapter) Open(path string) (io.ReadCloser, error) {
	ret := m.Called(path)

	var rc io.ReadCloser
	if v := ret.Get(0); v != nil {
		rc = v.(io.ReadCloser)
	}
	return rc, ret.Error(1)
}

// CreateExclusive provides a mock function.
func (m *MockFileSystemAdapter) CreateExclusive(path string, perm os.FileMode) (io.WriteCloser, error) {
	ret := m.Called(path, perm)

	var wc io.WriteCloser
	if v := ret.Get(0); v != nil {
		wc = v.(io.WriteCloser)
	}
	return wc, ret.Error(1)
}

// MkdirAll provides a mock function.
func (m *MockFileSystemAdapter) MkdirAll(path string, perm os.FileMode) error {
	return m.Called(path, perm).Error(0)
}

// Rename provides a mock function.
func (m *MockFileSystemAdapter) Rename(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

// Remove provides a mock function.
func (m *MockFileSystemAdapter) Remove(path string) error {
	return m.Called(path).Error(0)
}

// Stat provides a mock function.
func (m *MockFileSystemAdapter) Stat(path string) (os.FileInfo, error) {
	ret := m.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}
	return info, ret.Error(1)
}

// Times provides a mock function.
func (m *MockFileSystemAdapter) Times(path string) (domain.FileTimes, error) {
	ret := m.Called(path)
	return ret.Get(0).(domain.FileTimes), ret.Error(1)
}

// UserHomeDir provides a mock function.
func (m *MockFileSystemAdapter) UserHomeDir() (string, error) {
	ret := m.Called()
	return ret.String(0), ret.Error(1)
}

var _ domain.FileSystemAdapter = (*MockFileSystemAdapter)(nil)
