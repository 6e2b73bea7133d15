// SPDX-License-Identifier: MIT

// Package app runs one grassfire session from a config.Config:
//
//  1. build the grid and place start and goal,
//  2. scatter obstacles, publishing a frame per obstacle,
//  3. wait for interactive sinks (the terminal waits for Enter),
//  4. label distances from the goal, publishing a frame per label,
//  5. trace the shortest path, publishing a frame per step,
//  6. publish the final frame and wait for the viewer to quit.
//
// Frames go to every configured frame.Sink, paced at Config.FPS.
package app
