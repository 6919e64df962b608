package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockHierarchyRepository is a mock implementation of repository.HierarchyRepository
type MockHierarchyRepository struct {
	mock.Mock
}

func (m *MockHierarchyRepository) DeckIDsForCourse(ctx context.Context, courseID string) ([]string, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHierarchyRepository) SectionIDsForCourse(ctx context.Context, courseID string) ([]string, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHierarchyRepository) LessonIDsForSections(ctx context.Context, sectionIDs []string) ([]string, error) {
	args := m.Called(ctx, sectionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockHierarchyRepository) DeckIDsForLessons(ctx context.Context, lessonIDs []string) ([]string, error) {
	args := m.Called(ctx, lessonIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
