// Copyright © 2024 The Corvid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"errors"
	"strconv"
	"time"

	"github.com/corvidchess/corvid/internal/engine/context"
	"github.com/corvidchess/corvid/pkg/piece"
	"github.com/corvidchess/corvid/pkg/search"
	"github.com/corvidchess/corvid/pkg/timemanager"
	"github.com/corvidchess/corvid/pkg/uci/cmd"
	"github.com/corvidchess/corvid/pkg/uci/flag"
)

// NewGo builds the "go" command: parse the requested search limits,
// consult the opening book, and otherwise dispatch the position to the
// thread pool, streaming "info" lines back as iterative deepening
// progresses and replying with "bestmove" once it settles.
func NewGo(engine *context.Engine) cmd.Command {
	schema := flag.NewSchema()
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(i cmd.Interaction) error {
			if engine.Searching.Load() {
				return errors.New("go: search currently in progress")
			}

			if engine.OwnBook && engine.Book != nil {
				if m, ok := engine.Book.Probe(engine.Pos); ok {
					i.Replyf("bestmove %s", m)
					return nil
				}
			}

			limits, tm, err := parseSearchLimits(engine, i.Values)
			if err != nil {
				return err
			}

			engine.Searching.Store(true)
			tm.Start()

			engine.Pool.SetReport(func(info search.Info) {
				reportInfo(i, info)
			})

			pos := *engine.Pos

			go func() {
				defer engine.Searching.Store(false)

				pv, _ := engine.Pool.StartThinking(&pos, limits, tm)

				best, ponder := pv.Move(0), pv.Move(1)
				if ponder.String() == "0000" {
					i.Replyf("bestmove %s", best)
				} else {
					i.Replyf("bestmove %s ponder %s", best, ponder)
				}
			}()

			return nil
		},
		Flags: schema,
	}
}

func reportInfo(i cmd.Interaction, info search.Info) {
	nps := uint64(0)
	if info.Time > 0 {
		nps = info.Nodes * uint64(time.Second) / uint64(info.Time)
	}
	i.Replyf(
		"info depth %d seldepth %d score %s nodes %d nps %d time %d pv %s",
		info.Depth, info.SelDepth, info.Score, info.Nodes, nps, info.Time.Milliseconds(), info.PV,
	)
}

// parseSearchLimits translates a "go" command's flags into the
// search.Limits and time manager the thread pool's StartThinking
// expects, mirroring the mutually exclusive time-control shapes the
// UCI protocol allows: a fixed move time, a clock/increment budget, or
// no time control at all (node/depth-limited or infinite).
func parseSearchLimits(engine *context.Engine, values flag.Values) (search.Limits, search.TimeManager, error) {
	var limits search.Limits
	limits.Infinite = values["infinite"].Set

	if depth := values["depth"]; depth.Set {
		d, err := strconv.Atoi(depth.Value.(string))
		if err != nil {
			return limits, nil, err
		}
		limits.Depth = d
	}

	if nodes := values["nodes"]; nodes.Set {
		n, err := strconv.Atoi(nodes.Value.(string))
		if err != nil {
			return limits, nil, err
		}
		limits.Nodes = uint64(n)
	}

	timeSet := values["wtime"].Set || values["btime"].Set
	if timeSet && (!values["wtime"].Set || !values["btime"].Set) {
		return limits, nil, errors.New("go: both wtime and btime must be set")
	}

	switch {
	case values["movetime"].Set && (timeSet || values["infinite"].Set),
		values["infinite"].Set && timeSet:
		return limits, nil, errors.New("go: multiple time controls set")

	case values["movetime"].Set:
		ms, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, nil, err
		}
		limits.MoveTime = time.Duration(ms) * time.Millisecond
		return limits, &timemanager.MoveManager{MoveTime: limits.MoveTime}, nil

	case timeSet:
		tm, err := parseClockLimits(engine, values)
		if err != nil {
			return limits, nil, err
		}
		return limits, tm, nil

	default:
		// No clock given: either infinite, or depth/nodes only. Either
		// way give the time manager an effectively unbounded maximum so
		// only the Depth/Nodes/Infinite fields gate the search.
		return limits, &timemanager.MoveManager{MoveTime: 365 * 24 * time.Hour}, nil
	}
}

func parseClockLimits(engine *context.Engine, values flag.Values) (search.TimeManager, error) {
	us := engine.Pos.SideToMove

	wtime, err := strconv.Atoi(values["wtime"].Value.(string))
	if err != nil {
		return nil, err
	}
	btime, err := strconv.Atoi(values["btime"].Value.(string))
	if err != nil {
		return nil, err
	}

	clock := map[piece.Color]int{piece.White: wtime, piece.Black: btime}

	tm := &timemanager.NormalManager{
		Time:         time.Duration(clock[us]) * time.Millisecond,
		MoveOverhead: engine.MoveOverhead,
	}

	if values["winc"].Set || values["binc"].Set {
		if !values["winc"].Set || !values["binc"].Set {
			return nil, errors.New("go: both winc and binc must be set")
		}
		winc, err := strconv.Atoi(values["winc"].Value.(string))
		if err != nil {
			return nil, err
		}
		binc, err := strconv.Atoi(values["binc"].Value.(string))
		if err != nil {
			return nil, err
		}
		increment := map[piece.Color]int{piece.White: winc, piece.Black: binc}
		tm.Increment = time.Duration(increment[us]) * time.Millisecond
	}

	if mtg := values["movestogo"]; mtg.Set {
		n, err := strconv.Atoi(mtg.Value.(string))
		if err != nil {
			return nil, err
		}
		tm.MovesToGo = n
	}

	return tm, nil
}
