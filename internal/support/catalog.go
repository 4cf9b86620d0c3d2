package support

import (
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

// resources is the static parent support directory, in display order
var resources = []model.SupportResource{
	{
		Slug:         "understanding",
		Title:        "Understanding Dyslexia",
		Body:         "Learn the common signs, facts, and debunking myths about developmental dyslexia. This deep-dive section provides links to professional resources, diagnostic criteria, and historical context of dyslexia research.",
		ExternalLink: "https://www.dyslexiaida.org/understanding-dyslexia/",
	},
	{
		Slug:         "practice-guides",
		Title:        "Home Practice Guides",
		Body:         "Simple, effective daily activities you can do to support phonics and fluency at home. Includes downloadable schedules and short, fun exercises for auditory and visual processing.",
		ExternalLink: "https://www.orton-gillingham.com/home-practice-resources/",
	},
	{
		Slug:         "school-advocacy",
		Title:        "School Advocacy",
		Body:         "Advice, templates, and strategies for working with teachers and securing necessary accommodations. Find sample letters for IEP/504 requests and tips for productive parent-teacher meetings.",
		ExternalLink: "https://www.understood.org/articles/en/school-accommodations-for-dyslexia",
	},
	{
		Slug:         "emotional-wellness",
		Title:        "Emotional Wellness",
		Body:         "Tips on fostering confidence and managing frustration in your child's learning journey. Includes advice on building a growth mindset and celebrating non-academic strengths.",
		ExternalLink: "https://childmind.org/article/support-for-kids-with-dyslexia/",
	},
	{
		Slug:         "local-network",
		Title:        "Local Connection Network",
		Body:         "Find nearby pediatricians, therapists, or connect with other families going through a similar journey. This section features a geo-location search tool and a forum link.",
		ExternalLink: "https://www.decodingdyslexia.net/local-chapters/",
	},
}

// List returns all resources in display order
func List() []model.SupportResource {
	return append([]model.SupportResource(nil), resources...)
}

// Lookup finds a resource by slug
func Lookup(slug string) (model.SupportResource, error) {
	for _, r := range resources {
		if r.Slug == slug {
			return r, nil
		}
	}
	return model.SupportResource{}, model.ErrResourceNotFound
}
