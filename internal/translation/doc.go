// Package translation translates dictionary words through a remote
// service. The default backend queries the MyMemory API and picks the
// translation with an ordered fallback policy. OpenAI and Google Cloud
// Translation backends, a glossary of fixed translations and a circuit
// breaker wrapper are available through Config.
package translation
