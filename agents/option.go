package agents

import (
	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/tripmesh/tripmesh/components"
	"github.com/tripmesh/tripmesh/components/systemprompt"
)

type Option func(a *Config)

func WithClient(clt instructor.Instructor) Option {
	return func(c *Config) {
		c.client = clt
	}
}

func WithMemory(m *components.Memory) Option {
	return func(c *Config) {
		c.memory = m
	}
}

func WithSystemPromptGenerator(g systemprompt.Generator) Option {
	return func(c *Config) {
		c.systemPromptGenerator = g
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

func WithName(name string) Option {
	return func(c *Config) {
		c.name = name
	}
}
