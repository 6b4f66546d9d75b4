package main

import (
	"fmt"
	"log"
	"strings"
)

// IngestResult carries the per-person records of one ingestion pass plus
// the channels that could not be fetched. A channel whose fetch failed is
// left out of Records entirely and shows up in Errors instead.
type IngestResult struct {
	Records           map[string][]KPIRecord
	ChannelsProcessed int
	Errors            []string
}

// IngestAll pulls up to limit messages from every individual channel and
// maps them to KPI records keyed by person name.
func IngestAll(lister ChannelLister, fetcher MessageFetcher, limit int) (IngestResult, error) {
	channels, err := lister.ListChannels()
	if err != nil {
		return IngestResult{}, err
	}

	var targets []ChannelInfo
	for _, ch := range channels {
		if IsIndividualChannel(ch.Name) {
			targets = append(targets, ch)
		}
	}
	log.Printf("Found %d individual channels", len(targets))

	return ingestChannels(fetcher, targets, limit), nil
}

// IngestChannels pulls messages from an explicit list of channel names.
// Names that do not exist are reported as errors and skipped; they never
// abort the rest of the run.
func IngestChannels(lister ChannelLister, fetcher MessageFetcher, names []string, limit int) (IngestResult, error) {
	channels, err := lister.ListChannels()
	if err != nil {
		return IngestResult{}, err
	}
	byName := make(map[string]ChannelInfo, len(channels))
	for _, ch := range channels {
		byName[ch.Name] = ch
	}

	var targets []ChannelInfo
	result := IngestResult{Records: make(map[string][]KPIRecord)}
	for _, name := range names {
		ch, ok := byName[name]
		if !ok {
			log.Printf("Channel not found: %s", name)
			result.Errors = append(result.Errors, fmt.Sprintf("channel not found: %s", name))
			continue
		}
		targets = append(targets, ch)
	}

	part := ingestChannels(fetcher, targets, limit)
	for person, records := range part.Records {
		result.Records[person] = append(result.Records[person], records...)
	}
	result.ChannelsProcessed = part.ChannelsProcessed
	result.Errors = append(result.Errors, part.Errors...)
	return result, nil
}

// ingestChannels fetches and parses each target channel in turn,
// sequentially. One channel's failure never cancels the others.
func ingestChannels(fetcher MessageFetcher, targets []ChannelInfo, limit int) IngestResult {
	result := IngestResult{Records: make(map[string][]KPIRecord)}
	for _, ch := range targets {
		person, ok := ExtractPersonName(ch.Name)
		if !ok {
			person = ch.Name
		}

		log.Printf("Processing channel: %s", ch.Name)
		messages, err := fetcher.FetchMessages(ch.ID, limit)
		if err != nil {
			log.Printf("Error fetching messages from %s: %v", ch.Name, err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", ch.Name, err))
			continue
		}

		records := parseMessages(ch, person, messages)
		result.Records[person] = append(result.Records[person], records...)
		result.ChannelsProcessed++
		log.Printf("  Found %d messages", len(records))
	}
	return result
}

// parseMessages maps raw messages to KPIRecords. A message is dropped only
// when its text is empty or whitespace and nothing could be extracted.
func parseMessages(ch ChannelInfo, person string, messages []ChannelMessage) []KPIRecord {
	records := make([]KPIRecord, 0, len(messages))
	for _, msg := range messages {
		values := ExtractKPIValues(msg.Text)
		if len(values) == 0 && strings.TrimSpace(msg.Text) == "" {
			continue
		}
		records = append(records, KPIRecord{
			ChannelID:   ch.ID,
			ChannelName: ch.Name,
			Person:      person,
			Timestamp:   msg.Timestamp,
			Text:        msg.Text,
			KPIValues:   values,
		})
	}
	return records
}
