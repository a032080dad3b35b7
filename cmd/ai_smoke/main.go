package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"resume-editor/internal/adapter/repository"
	"resume-editor/internal/domain"
	"resume-editor/internal/model"
	"resume-editor/internal/usecase"
	"resume-editor/pkg/ai"
	"resume-editor/pkg/importer"
)

// Runs the editor against a local stand-in for the ai-service.

func startMockAI(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/chat", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]interface{}
		_ = json.Unmarshal(body, &req)
		input, _ := req["input"].(string)

		if input == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		text := "Engineer who ships reliable systems and mentors the people around them."
		if strings.Contains(input, `"section":"experience"`) {
			text = "Owned the storefront rewrite end to end and halved page load times."
		}
		out, _ := json.Marshal(map[string]string{"text": text})
		b, _ := json.Marshal(map[string]interface{}{"agent": "mock", "output": string(out)})
		w.Header().Set("Content-Type", "application/json")
		w.Write(b)
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("mock ai server failed: %v", err)
		}
	}()
	return srv
}

func main() {
	srv := startMockAI(":8000")
	defer srv.Shutdown(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	client := ai.NewClient("http://127.0.0.1:8000", "english")
	resumeRepo := repository.NewResumeRepo(repository.NewMemoryStore())
	editor := usecase.NewEditor(resumeRepo, client, importer.NewSampleImporter(0), usecase.WithSaveDelay(0))

	upload := domain.Upload{Name: "smoke.pdf", ContentType: domain.ContentTypePDF}
	if !editor.ImportFile(ctx, upload) {
		fmt.Println("import failed")
		os.Exit(1)
	}
	r, _ := editor.Resume()
	for _, req := range []usecase.EnhanceRequest{
		{Section: model.SectionSummary, Text: model.EnhancementInput(r, model.SectionSummary, "")},
		{Section: model.SectionExperience, Text: model.EnhancementInput(r, model.SectionExperience, "")},
	} {
		if !editor.RequestEnhancement(ctx, req) {
			fmt.Printf("enhance %s was not applied\n", req.Section)
			os.Exit(1)
		}
	}

	out, ok := editor.Export()
	if !ok {
		fmt.Println("export failed")
		os.Exit(1)
	}
	fmt.Printf("Smoke run completed. %s:\n%s\n", out.Filename, out.Body)
}
