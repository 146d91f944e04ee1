package cli

import "github.com/MakeNowJust/heredoc"

var envHelp = map[string]string{
	"short": "List of supported environment variables",
	"long": heredoc.Doc(`
			GOSSIP_LOG_LEVEL: level of the server logs (debug, info, warn, error).

			GOSSIP_DB_HOST, GOSSIP_DB_PORT, GOSSIP_DB_NAME, GOSSIP_DB_USER,
			GOSSIP_DB_PASSWORD, GOSSIP_DB_SSLMODE: postgres connection.

			GOSSIP_SERVICE_HOST, GOSSIP_SERVICE_PORT: address the HTTP server binds to.

			GOSSIP_SERVICE_IDENTITY_HEADERKEY_ACTOR: request header holding the actor
			nickname or id. Default "Gossip-Actor".

			GOSSIP_SERVICE_SEARCH_PAGE_SIZE: records fetched per domain and page.

			GOSSIP_STATSD_ENABLED, GOSSIP_STATSD_ADDRESS, GOSSIP_STATSD_PREFIX:
			statsd metrics.

			GOSSIP_TELEMETRY_OPEN_TELEMETRY_ENABLED: export traces and metrics
			over OTLP.
		`),
}

var filtersHelp = map[string]string{
	"short": "Filters understood by search queries",
	"long": heredoc.Doc(`
			A query is a list of space separated terms. A term written as
			key:value1,value2 is a filter, anything else is free text matched
			against note content and actor names.

			note-local:true|false          only local (or remote) notes
			note-types:text|media          notes with text or media only
			notes-include:text|media       same as note-types
			note-conversation:<id>         notes of one conversation
			note-from:subscribed           notes of actors the viewer follows
			note-from:subscribed-<kind>    same, restricted to person, group,
			                               organisation, business or bot actors
			actor-types:<kind>,...         actors of the given kinds
			actors-include:<kind>,...      same as actor-types
			tag:<tag>,...                  notes carrying one of the hashtags
			note-language:<locale>,...     notes written in one of the locales

			Repeating tag: asks for every term, tag:go tag:sql finds notes
			tagged with both. Filter keys are case insensitive and free text
			matches regardless of case.

			Unknown filters are ignored, as are filters given without a value
			such as note-types: or actor-types:.
		`),
}
