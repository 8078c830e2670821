// Package mocks holds gomock doubles for list collaborators.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockCloner is a mock of list.Cloner[int] interface.
type MockCloner struct {
	ctrl     *gomock.Controller
	recorder *MockClonerMockRecorder
}

// MockClonerMockRecorder is the mock recorder for MockCloner.
type MockClonerMockRecorder struct {
	mock *MockCloner
}

// NewMockCloner creates a new mock instance.
func NewMockCloner(ctrl *gomock.Controller) *MockCloner {
	mock := &MockCloner{ctrl: ctrl}
	mock.recorder = &MockClonerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCloner) EXPECT() *MockClonerMockRecorder {
	return m.recorder
}

// Clone mocks base method.
func (m *MockCloner) Clone(arg0 int) (int, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone", arg0)
	ret0, _ := ret[0].(int)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Clone indicates an expected call of Clone.
func (mr *MockClonerMockRecorder) Clone(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*MockCloner)(nil).Clone), arg0)
}
