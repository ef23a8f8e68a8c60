package project

import (
	"fmt"
)

// CrossPlatformTestingSlug is the slug of the cross-platform testing page.
const CrossPlatformTestingSlug = "cross-platform-testing"

var crossPlatformTesting = Project{
	Slug:    CrossPlatformTestingSlug,
	Name:    "Cross-Platform Testing Framework",
	Summary: "Python-based testing framework supporting web, API, and mobile testing with detailed reporting and CI/CD integration capabilities for comprehensive quality assurance.",
	Metadata: Metadata{
		Title:       "Cross-Platform Testing Framework - Hasib Ahmed",
		Description: "Python-based testing framework supporting web, API, and mobile testing with detailed reporting and CI/CD integration capabilities.",
	},
	Technologies: []string{
		"Python", "Pytest", "Selenium", "Appium", "Requests", "Allure Reports",
	},
	Features: []Feature{
		{
			Icon:        "monitor",
			Title:       "Web Testing",
			Description: "Cross-browser web application testing with Selenium WebDriver and parallel execution",
		},
		{
			Icon:        "smartphone",
			Title:       "Mobile Testing",
			Description: "Native and hybrid mobile app testing for iOS and Android using Appium framework",
		},
		{
			Icon:        "test-tube",
			Title:       "API Testing",
			Description: "RESTful API testing with comprehensive validation and performance monitoring",
		},
		{
			Icon:        "bar-chart",
			Title:       "Detailed Reporting",
			Description: "Rich test reports with screenshots, logs, and metrics for stakeholder visibility",
		},
	},
	RepoURL: "https://github.com/hasib2k/cross-platform-testing",
	Architecture: []Section{
		{
			Heading: "Multi-Platform Support",
			Paragraph: "Unified testing framework supporting web browsers, mobile devices (iOS/Android), and API endpoints. " +
				"Built with Python for maintainability and extensive library ecosystem integration.",
		},
		{
			Heading: "Testing Capabilities",
			Bullets: []string{
				"Cross-browser testing (Chrome, Firefox, Safari, Edge) with Selenium Grid",
				"Mobile testing for native and hybrid apps using Appium",
				"REST API testing with comprehensive validation and monitoring",
				"Parallel test execution for faster feedback cycles",
				"Data-driven testing with external data sources",
				"CI/CD integration with Jenkins, GitHub Actions, and Azure DevOps",
			},
		},
		{
			Heading: "Enterprise Impact",
			Paragraph: "This framework has streamlined testing processes across multiple teams, reducing testing " +
				"cycle time by 65% and improving defect detection rates through comprehensive coverage. " +
				"The unified approach has standardized testing practices and improved team collaboration.",
		},
	},
}

// catalog lists every project in display order.
var catalog = []Project{
	crossPlatformTesting,
}

// All returns every project in display order.
func All() []Project {
	out := make([]Project, len(catalog))
	for i, p := range catalog {
		out[i] = p.clone()
	}
	return out
}

// Get returns the project with the given slug.
func Get(slug string) (Project, error) {
	for _, p := range catalog {
		if p.Slug == slug {
			return p.clone(), nil
		}
	}
	return Project{}, fmt.Errorf("%w: %s", ErrNotFound, slug)
}

// CrossPlatformTesting returns the cross-platform testing framework project.
func CrossPlatformTesting() Project {
	return crossPlatformTesting.clone()
}
