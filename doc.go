/*
Command snflog reconstructs SNIFS runs and exposures from run logs.

Contents

Version 0.3

  Program overview
  Command line usage
  Configuration
  Run log format
  Reconstruction outline


Program overview

Input is a SNIFS run log, as written by the observing scripts during a
night.  Output is the list of runs found in the log, each with its
exposures, either as a summary table or as a YAML document.

Helper commands convert sexagesimal coordinates, compute angular
separations and convert UTC timestamps to Julian dates.  They use the same
conventions the run log reader uses.


Command line usage

  snflog runs [--format summary|yaml] [--allow-unknown] <logfile>
  snflog radec <value> <ra|dec>
  snflog sep <ra1> <dec1> <ra2> <dec2>
  snflog jd <utc time>

A logfile of "-" reads the log from standard input.  Coordinates with a
leading minus sign must follow "--" so they are not taken as options.

  snflog radec -- "-20 52 23.7" dec
  snflog jd Wed Sep 28 08:47:17 UTC 2005

Diagnostics, including warnings about runs with fewer or more exposures
than their header announced, are logged to standard error.


Configuration

The configuration file is TOML.  The default location is
~/.config/snflog/config.toml and the --config option names another.  A
missing file is not an error; built in defaults apply.

  [reconstruct]
  allow_unknown_scripts = false
  scala_exposures = 100

  [log]
  level = "info"      # debug, info, warn, error
  format = "text"     # text, json

  [output]
  format = "summary"  # summary, yaml

Unless allow_unknown_scripts is set, a run of a script no rule classifies
stops reconstruction with an error.


Run log format

Every record line starts with the two digit year, so lines starting with
anything but 0 or 1 are ignored.  Fields are separated by white space:

  YY DDD RRR <script path> <expected> <event> ...

A run header has "init" as the seventh field, an optional option string in
parentheses, and "==>" followed by the UTC start time as printed by
"date --utc".  A pose line has the single letter channel tags P, R and B
and "==>" followed by the exposure time.


Reconstruction outline

1.  A header opens a run.  The script name and options classify the run's
target, kind and type.

2.  A pose line creates exposures from the last event seen up to its own
event number, so a log that skipped lines still gets every exposure.  All
exposures created by one line share its channels and time.

3.  A do_scala pose line always creates scala_exposures exposures.

4.  The next header, or the end of the log, closes a run.  A run whose
exposure count differs from its header is reported as incomplete.

-------------
Public domain.
*/
package main
