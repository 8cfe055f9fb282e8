// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
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

// Package stats estimates how much stronger one seat of a game is than the
// other from a series of results, and runs sequential probability ratio
// tests on that estimate.
package stats

import "math"

// Score counts the results of a series of games from the point of view of
// one side. Games cut off by a turn cap count as draws.
type Score struct {
	Wins, Draws, Losses int
}

// Games returns the number of games in the score.
func (score Score) Games() int {
	return score.Wins + score.Draws + score.Losses
}

// Rate returns the fraction of points scored, a draw being half a point.
func (score Score) Rate() float64 {
	n := score.Games()
	if n == 0 {
		return 0
	}

	return (float64(score.Wins) + float64(score.Draws)/2) / float64(n)
}

// Elo returns the likely elo difference of the side along with its 95%
// lower and upper bounds.
func (score Score) Elo() (lower float64, elo float64, upper float64) {
	n := float64(score.Games())
	if n == 0 {
		return 0, 0, 0
	}

	w := float64(score.Wins) / n   // measured win probability
	d := float64(score.Draws) / n  // measured draw probability
	l := float64(score.Losses) / n // measured loss probability

	// empirical mean and its standard error
	mu := w + d/2
	sigma := math.Sqrt(w*math.Pow(1-mu, 2)+d*math.Pow(0.5-mu, 2)+l*math.Pow(0-mu, 2)) / math.Sqrt(n)

	lower = scoreToElo(mu + phiInv(0.025)*sigma)
	upper = scoreToElo(mu + phiInv(0.975)*sigma)
	return lower, scoreToElo(mu), upper
}

// ErrorMargin returns the half width of the 95% elo interval.
func (score Score) ErrorMargin() float64 {
	lower, elo, upper := score.Elo()
	return math.Abs(math.Max(upper-elo, elo-lower))
}

// LLR returns the log-likelihood ratio of the hypothesis that the side is
// elo1 stronger against the hypothesis that it is elo0 stronger, using a
// Dirichlet(0.5, 0.5, 0.5) prior so that it is defined for any score.
func (score Score) LLR(elo0, elo1 float64) float64 {
	ws := float64(score.Wins) + 0.5
	ds := float64(score.Draws) + 0.5
	ls := float64(score.Losses) + 0.5

	n := ws + ds + ls
	_, dlo := wdlToElo(ws/n, ds/n, ls/n)

	w0, d0, l0 := eloToWDL(elo0, dlo)
	w1, d1, l1 := eloToWDL(elo1, dlo)

	return ws*math.Log(w1/w0) + ds*math.Log(d1/d0) + ls*math.Log(l1/l0)
}

// StoppingBounds returns the llr bounds at which a test accepts H0 (lower)
// or H1 (upper) for the given type I and type II error rates.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// scoreToElo converts an expected score to an elo difference. Scores of 0
// or 1 have no finite elo and map to 0.
func scoreToElo(x float64) float64 {
	if x <= 0 || x >= 1 {
		return 0
	}

	return -400 * math.Log10(1/x-1)
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to its bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
