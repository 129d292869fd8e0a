package templates

import (
	"strings"
	"testing"
)

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	tests := []struct {
		name         string
		template     string
		data         any
		wantHTML     []string
		wantText     []string
		wantNotInAll []string
	}{
		{
			name:     "password reset",
			template: "password_reset",
			data: PasswordResetData{
				UserName:  "Ana",
				ResetURL:  "https://app.example.com/reset?token=abc",
				ExpiresIn: "1 hora",
			},
			wantHTML: []string{"Ola, Ana", "https://app.example.com/reset?token=abc", "1 hora"},
			wantText: []string{"Ola, Ana", "https://app.example.com/reset?token=abc", "1 hora"},
		},
		{
			name:     "notification with amount and due date",
			template: "notification",
			data: NotificationData{
				UserName:    "Ana",
				CompanyName: "Padaria Central",
				Title:       "Conta vencida",
				Message:     "Aluguel venceu.",
				Amount:      "R$ 1.500,00",
				DueDate:     "10/03/2026",
				Link:        "https://app.example.com/entries/1",
			},
			wantHTML: []string{"Padaria Central", "Conta vencida", "R$ 1.500,00", "10/03/2026", "Abrir no ERP"},
			wantText: []string{"[Padaria Central] Conta vencida", "Valor: R$ 1.500,00", "Vencimento: 10/03/2026"},
		},
		{
			name:     "notification without optional fields",
			template: "notification",
			data: NotificationData{
				UserName: "Ana",
				Title:    "Lembrete",
				Message:  "Ligar para o fornecedor.",
			},
			wantHTML:     []string{"Lembrete", "Ligar para o fornecedor."},
			wantText:     []string{"Lembrete"},
			wantNotInAll: []string{"Valor", "Vencimento", "Abrir no ERP"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html, text, err := r.Render(tt.template, tt.data)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			for _, want := range tt.wantHTML {
				if !strings.Contains(html, want) {
					t.Errorf("HTML missing %q", want)
				}
			}
			for _, want := range tt.wantText {
				if !strings.Contains(text, want) {
					t.Errorf("text missing %q", want)
				}
			}
			for _, unwanted := range tt.wantNotInAll {
				if strings.Contains(html, unwanted) || strings.Contains(text, unwanted) {
					t.Errorf("output should not contain %q", unwanted)
				}
			}
		})
	}
}

func TestRenderer_EscapesHTML(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	html, _, err := r.Render("notification", NotificationData{Title: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("HTML output should escape markup in data")
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}

	if _, _, err := r.Render("does_not_exist", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
