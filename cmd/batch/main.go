// Offline batch runner: submits a JSONL file of prompts through the Anthropic
// Message Batches API and writes the results as JSONL. Not part of the
// interactive query path.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"churro/internal/config"
	"churro/internal/service"

	"github.com/sirupsen/logrus"
)

// promptLine is one input line: a prompt with an optional id and system text.
type promptLine struct {
	CustomID string `json:"custom_id,omitempty"`
	Prompt   string `json:"prompt"`
	System   string `json:"system,omitempty"`
}

// resultLine is one output line.
type resultLine struct {
	CustomID string `json:"custom_id"`
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Error    string `json:"error,omitempty"`
}

func main() {
	input := flag.String("input", "", "input JSONL file of prompts (required)")
	output := flag.String("output", "results.jsonl", "output JSONL file")
	interval := flag.Duration("interval", 5*time.Second, "poll interval")
	flag.Parse()

	if *input == "" {
		logrus.Fatal("-input is required")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if !cfg.Anthropic.Enabled {
		logrus.Fatal("ANTHROPIC_API_KEY must be set for batch submission")
	}

	client := service.NewAnthropicClient(&cfg.Anthropic)

	requests, err := readPrompts(client, *input)
	if err != nil {
		logrus.Fatalf("Failed to read prompts: %v", err)
	}
	if len(requests) == 0 {
		logrus.Fatal("input file contains no prompts")
	}
	logrus.Infof("Submitting %d requests", len(requests))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := client.SubmitAndWait(ctx, requests, *interval)
	if err != nil {
		logrus.Fatalf("Batch failed: %v", err)
	}

	if err := writeResults(*output, results); err != nil {
		logrus.Fatalf("Failed to write results: %v", err)
	}
	logrus.Infof("Wrote %d results to %s", len(results), *output)
}

func readPrompts(client *service.AnthropicClient, path string) ([]service.BatchRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var requests []service.BatchRequest
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p promptLine
		if err := json.Unmarshal(line, &p); err != nil {
			return nil, err
		}
		requests = append(requests, client.MakeBatchRequest(p.CustomID, p.Prompt, p.System, nil))
	}
	return requests, scanner.Err()
}

func writeResults(path string, results []service.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range results {
		line := resultLine{CustomID: r.CustomID, Type: r.Result.Type}
		switch {
		case r.Result.Type == "succeeded":
			line.Text = r.Text()
		case r.Result.Error != nil:
			line.Error = r.Result.Error.Message
		}
		if err := enc.Encode(line); err != nil {
			return err
		}
	}
	return w.Flush()
}
