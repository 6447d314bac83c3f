package util

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const alpha = "abcdefghjklmnopqrstuvwxyz"

// RandomInt generates a random integer between min and max
func RandomInt(min, max int64) int64 {
	if max < min {
		min, max = max, min // swap if needed
	}
	return rand.Int63n(max-min+1) + min
}

// RandomString generates a random string of length n
func RandomString(n int) string {
	var sb strings.Builder
	k := len(alpha)

	for range n {
		c := alpha[rand.Intn(k)]
		sb.WriteByte(c)
	}

	return sb.String()
}

// RandomName generates a random name which can be used for anything
func RandomName() string {
	return RandomString(6)
}

// RandomEmail generates a random email
func RandomEmail() string {
	return RandomString(7) + "@" + RandomString(6) + ".com"
}

// RandomProficiency returns a random proficiency level: "Beginner", "Intermediate", or "Advanced"
func RandomProficiency() string {
	options := []string{"Beginner", "Intermediate", "Advanced"}
	return options[rand.Intn(len(options))]
}

// RandomSkillName generates a plausible skill name like "React Hooks" or "Terraform"
func RandomSkillName() string {
	bases := []string{
		"Go", "Python", "TypeScript", "React", "PostgreSQL", "Docker", "Kubernetes",
		"Terraform", "GraphQL", "Redis", "Kafka", "AWS", "Rust", "Svelte",
	}
	suffixes := []string{
		"", "", " Hooks", " Internals", " Tuning", " Pipelines", " Migrations",
	}
	return bases[rand.Intn(len(bases))] + suffixes[rand.Intn(len(suffixes))] + " " + RandomString(4)
}

// RandomJobTitle generates a realistic-sounding job title like "Senior Backend Engineer"
func RandomJobTitle() string {
	levels := []string{"Junior", "Mid-level", "Senior", "Staff", "Lead"}
	roles := []string{
		"Backend Engineer", "Frontend Developer", "Data Engineer", "DevOps Engineer",
		"Software Engineer", "Platform Engineer", "Site Reliability Engineer",
	}
	return levels[rand.Intn(len(levels))] + " " + roles[rand.Intn(len(roles))]
}

// RandomCompany generates a tech-sounding company name like "QuantumForge Labs"
func RandomCompany() string {
	first := []string{
		"Quantum", "Neural", "Cloud", "Data", "Hyper", "Vertex", "Apex", "Nimbus", "Signal",
	}
	second := []string{
		"Forge", "Works", "Flux", "Grid", "Scale", "Stack", "Loop", "Byte",
	}
	suffix := []string{"", " Labs", " Systems", " Inc", " Technologies"}
	return first[rand.Intn(len(first))] + second[rand.Intn(len(second))] + suffix[rand.Intn(len(suffix))]
}

// RandomDescription returns a short resume-style role description
func RandomDescription() string {
	verbs := []string{
		"Built", "Designed", "Deployed", "Maintained", "Optimized", "Automated", "Led development of",
	}
	adjectives := []string{
		"scalable", "distributed", "cloud-native", "high-performance", "real-time", "modular",
	}
	nouns := []string{
		"data pipeline", "microservice", "analytics dashboard", "API gateway",
		"recommendation engine", "CI/CD workflow", "billing platform",
	}

	return fmt.Sprintf("%s a %s %s.",
		verbs[rand.Intn(len(verbs))],
		adjectives[rand.Intn(len(adjectives))],
		nouns[rand.Intn(len(nouns))],
	)
}

// RandomDate returns a random calendar date within the last ten years, truncated to midnight UTC.
func RandomDate() time.Time {
	days := rand.Intn(365 * 10)
	return time.Now().UTC().AddDate(0, 0, -days).Truncate(24 * time.Hour)
}
