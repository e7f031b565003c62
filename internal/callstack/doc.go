/*
The callstack package provides a Stack type which records the stages of a
program as they are entered and left. In verbose mode each stage is
announced when it starts and its duration is reported when it finishes;
the ShowTimings flag reports the durations without the other verbose
messages. Messages printed through the Stack are prefixed with a tag
showing the current stage and its depth.
*/
package callstack
