package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/greydoubt/polyrhythmix/constants"
	"github.com/greydoubt/polyrhythmix/duration"
	"github.com/greydoubt/polyrhythmix/meter"
	"github.com/greydoubt/polyrhythmix/model"
	"github.com/greydoubt/polyrhythmix/pattern"
	"github.com/greydoubt/polyrhythmix/render"
	"github.com/greydoubt/polyrhythmix/util"
)

var addrFlag string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&addrFlag, "addr", ":8080", "listen address")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the compiler over HTTP",
	Long:  `Serves the compiler over HTTP: POST /render returns a MIDI file, POST /converge a bar count`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/converge", HandleConverge).Methods("POST")
	log.Fatal(http.ListenAndServe(addrFlag, cors.Default().Handler(router)))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// decodeRequest reads the body into the shared request shape and compiles
// the patterns, filling in the flag defaults. Each request gets an id so
// failures can be tied back to server logs.
func decodeRequest(w http.ResponseWriter, r *http.Request) (model.RenderRequestBody, map[render.DrumPart]pattern.Groups, map[render.DrumPart]string, meter.TimeSignature, bool) {
	reqID := uuid.New().String()
	w.Header().Set("X-Request-Id", reqID)

	var input model.RenderRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("[%v] bad request body: %v", reqID, err)
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return input, nil, nil, meter.TimeSignature{}, false
	}
	if input.Tempo == 0 {
		input.Tempo = constants.DefaultTempo
	}
	if input.TimeSignature == "" {
		input.TimeSignature = "4/4"
	}

	parts, blueprints, err := collectParts(input.Kick, input.Snare, input.HiHat, input.Crash)
	if err != nil {
		log.Printf("[%v] %v", reqID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return input, nil, nil, meter.TimeSignature{}, false
	}
	if len(parts) == 0 {
		writeError(w, http.StatusBadRequest, "no drum pattern was supplied")
		return input, nil, nil, meter.TimeSignature{}, false
	}

	sig, err := meter.ParseTimeSignature(input.TimeSignature)
	if err != nil {
		log.Printf("[%v] %v", reqID, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return input, nil, nil, meter.TimeSignature{}, false
	}
	return input, parts, blueprints, sig, true
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	input, parts, blueprints, sig, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	text := render.TextDescription(blueprints)
	s, err := render.CreateSMF(parts, sig, text, input.Tempo, input.FollowKickWithBass)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "audio/midi")
	if _, err := s.WriteTo(w); err != nil {
		log.Printf("writing rendered file: %v", err)
	}
}

func HandleConverge(w http.ResponseWriter, r *http.Request) {
	_, parts, _, sig, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	res := model.ConvergeResponse{
		BarTicks:  sig.Ticks(),
		PartTicks: make(map[string]uint32),
	}
	lengths := make([]duration.KnownLength, 0, len(parts))
	for _, p := range util.GetKeys(parts) {
		res.PartTicks[fmt.Sprintf("%v", p)] = parts[p].Ticks()
		lengths = append(lengths, parts[p])
	}

	bars, err := sig.Converges(lengths...)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	res.Bars = bars

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
