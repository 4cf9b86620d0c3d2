package support

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

type CatalogSuite struct {
	suite.Suite
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) TestListPreservesDisplayOrder() {
	listed := List()

	s.Require().Len(listed, 5)
	slugs := make([]string, 0, len(listed))
	for _, r := range listed {
		slugs = append(slugs, r.Slug)
	}
	s.Equal([]string{"understanding", "practice-guides", "school-advocacy", "emotional-wellness", "local-network"}, slugs)
}

func (s *CatalogSuite) TestLookupKnownSlug() {
	resource, err := Lookup("emotional-wellness")
	s.Require().NoError(err)

	s.Equal("Emotional Wellness", resource.Title)
	s.Contains(resource.Body, "growth mindset")
	s.NotEmpty(resource.ExternalLink)
}

func (s *CatalogSuite) TestLookupUnknownSlug() {
	_, err := Lookup("homework-hacks")
	s.ErrorIs(err, model.ErrResourceNotFound)
}

func (s *CatalogSuite) TestEveryResourceIsFullyPopulated() {
	for _, r := range List() {
		s.NotEmpty(r.Slug)
		s.NotEmpty(r.Title)
		s.NotEmpty(r.Body)
		s.NotEmpty(r.ExternalLink)
	}
}

func (s *CatalogSuite) TestListReturnsACopy() {
	List()[0].Title = "tampered"
	s.Equal("Understanding Dyslexia", List()[0].Title)
}
